package service

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UploadAttachments stores each file and returns the public URLs in input
// order. Uploading is best-effort: a file the blob store rejects is logged and
// omitted so one bad attachment never blocks the submission.
func (s *Service) UploadAttachments(ctx context.Context, files []Attachment) []string {
	urls := make([]string, 0, len(files))

	for _, f := range files {
		key := storageKey(f.Name)

		if err := s.blobs.Put(ctx, key, f.ContentType, f.Data); err != nil {
			log.Printf("❌ Failed to upload attachment %q: %v", f.Name, err)
			continue
		}

		urls = append(urls, s.blobs.PublicURL(key))
	}

	return urls
}

// storageKey builds a globally unique key from a random token, a timestamp
// and the original extension, so identical filenames across submissions never
// collide.
func storageKey(filename string) string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s-%d%s", token, time.Now().UnixMilli(), strings.ToLower(filepath.Ext(filename)))
}
