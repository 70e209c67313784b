package uploads

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AnonymousOwner is the owner segment used for unauthenticated uploads.
const AnonymousOwner = "anonymous"

// stagingTimeFormat is YYYYMMDDHHMMSS, the bucket name for uploads that
// arrive before their post exists.
const stagingTimeFormat = "20060102150405"

// Upload is the result of resolving and writing one uploaded file.
type Upload struct {
	// StoragePath is the absolute filesystem path the file was written to.
	StoragePath string `json:"-"`

	// PublicURL is where the file is served from, always forward-slashed.
	PublicURL string `json:"link"`
}

// Resolver computes deterministic, collision-resistant storage paths for
// uploaded files and writes them under the configured media root.
//
// Layout: <MediaRoot>/blog_pics/<owner>/<post segment>/images/<token><ext>
// where owner is the uploader's username (or "anonymous"), the post segment
// is post_<id> for existing posts or a new_<timestamp> staging bucket, and
// the filename is a fresh random token. The original filename is discarded
// apart from its extension, so concurrent uploads can never collide and a
// crafted name can never escape the media root.
type Resolver struct {
	cfg Config

	// now is swappable for tests
	now func() time.Time
}

// NewResolver creates a resolver over a validated config.
func NewResolver(cfg Config) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{cfg: cfg, now: time.Now}, nil
}

// Resolve writes content to its computed storage path and returns the path
// and public URL. username may be empty for anonymous uploads; postID is
// nil for uploads belonging to a not-yet-created post. I/O failures are
// propagated, not swallowed - the caller retries the whole operation.
func (r *Resolver) Resolve(username string, postID *int64, originalName string, content []byte) (*Upload, error) {
	if strings.TrimSpace(originalName) == "" {
		return nil, ErrEmptyFilename
	}

	owner := sanitizeSegment(username)
	if owner == "" {
		owner = AnonymousOwner
	}

	var postSegment string
	if postID != nil {
		postSegment = fmt.Sprintf("post_%d", *postID)
	} else {
		postSegment = "new_" + r.now().UTC().Format(stagingTimeFormat)
	}

	relDir := path.Join("blog_pics", owner, postSegment, "images")
	dir := filepath.Join(r.cfg.MediaRoot, filepath.FromSlash(relDir))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}

	filename := newToken() + sanitizeExt(originalName)
	storagePath := filepath.Join(dir, filename)

	// Full write, no partial-write recovery
	if err := os.WriteFile(storagePath, content, 0644); err != nil {
		return nil, fmt.Errorf("failed to write upload %s: %w", storagePath, err)
	}

	relPath := path.Join(relDir, filename)
	publicURL := strings.TrimRight(r.cfg.MediaURL, "/") + "/" + relPath

	slog.Info("stored upload",
		"owner", owner,
		"postSegment", postSegment,
		"bytes", len(content),
		"path", relPath,
	)

	return &Upload{
		StoragePath: storagePath,
		PublicURL:   publicURL,
	}, nil
}

// newToken returns a fresh random filename token (uuid4 hex).
func newToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// sanitizeSegment makes a username safe for use as a directory name by
// stripping path separators, null bytes and traversal sequences.
// Separators and null bytes go first so removal can never reassemble a
// ".." out of the surviving characters; the traversal pass then loops to
// a fixpoint for the same reason.
func sanitizeSegment(s string) string {
	s = strings.ReplaceAll(s, "/", "")
	s = strings.ReplaceAll(s, "\\", "")
	s = strings.ReplaceAll(s, "\x00", "")
	for strings.Contains(s, "..") {
		s = strings.ReplaceAll(s, "..", "")
	}
	return strings.TrimSpace(s)
}

// sanitizeExt extracts a safe file extension from the original filename.
// Anything suspicious degrades to no extension rather than an error.
func sanitizeExt(name string) string {
	ext := filepath.Ext(filepath.Base(name))
	if ext == "." || strings.ContainsAny(ext, "/\\\x00") || strings.Contains(ext, "..") {
		return ""
	}
	return strings.ToLower(ext)
}
