package uploads

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) (*Resolver, string) {
	t.Helper()
	root := t.TempDir()
	resolver, err := NewResolver(Config{
		MediaRoot: root,
		MediaURL:  "/media",
	})
	require.NoError(t, err)
	return resolver, root
}

func TestResolve_EmptyFilename(t *testing.T) {
	resolver, _ := newTestResolver(t)

	_, err := resolver.Resolve("alice", nil, "   ", []byte("data"))
	assert.ErrorIs(t, err, ErrEmptyFilename)
}

func TestResolve_IdenticalFilenamesNeverCollide(t *testing.T) {
	resolver, _ := newTestResolver(t)

	postID := int64(7)
	first, err := resolver.Resolve("alice", &postID, "photo.png", []byte("first"))
	require.NoError(t, err)
	second, err := resolver.Resolve("alice", &postID, "photo.png", []byte("second"))
	require.NoError(t, err)

	assert.NotEqual(t, first.StoragePath, second.StoragePath)

	// Both files persist un-overwritten
	firstContent, err := os.ReadFile(first.StoragePath)
	require.NoError(t, err)
	secondContent, err := os.ReadFile(second.StoragePath)
	require.NoError(t, err)
	assert.Equal(t, "first", string(firstContent))
	assert.Equal(t, "second", string(secondContent))
}

func TestResolve_PostSegment(t *testing.T) {
	resolver, root := newTestResolver(t)

	postID := int64(42)
	upload, err := resolver.Resolve("alice", &postID, "photo.png", []byte("data"))
	require.NoError(t, err)

	rel, err := filepath.Rel(root, upload.StoragePath)
	require.NoError(t, err)
	parts := strings.Split(filepath.ToSlash(rel), "/")
	require.Len(t, parts, 5)
	assert.Equal(t, "blog_pics", parts[0])
	assert.Equal(t, "alice", parts[1])
	assert.Equal(t, "post_42", parts[2])
	assert.Equal(t, "images", parts[3])
	assert.True(t, strings.HasSuffix(parts[4], ".png"))
}

func TestResolve_StagingSegmentIsTimestampShaped(t *testing.T) {
	resolver, root := newTestResolver(t)

	upload, err := resolver.Resolve("alice", nil, "photo.png", []byte("data"))
	require.NoError(t, err)

	rel, err := filepath.Rel(root, upload.StoragePath)
	require.NoError(t, err)
	parts := strings.Split(filepath.ToSlash(rel), "/")
	require.Len(t, parts, 5)
	assert.Regexp(t, regexp.MustCompile(`^new_\d{14}$`), parts[2])

	// The directory was created on demand
	info, err := os.Stat(filepath.Dir(upload.StoragePath))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestResolve_AnonymousOwner(t *testing.T) {
	resolver, root := newTestResolver(t)

	upload, err := resolver.Resolve("", nil, "photo.png", []byte("data"))
	require.NoError(t, err)

	rel, err := filepath.Rel(root, upload.StoragePath)
	require.NoError(t, err)
	assert.Equal(t, AnonymousOwner, strings.Split(filepath.ToSlash(rel), "/")[1])
}

func TestResolve_PublicURL(t *testing.T) {
	resolver, _ := newTestResolver(t)

	postID := int64(7)
	upload, err := resolver.Resolve("alice", &postID, "photo.PNG", []byte("data"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(upload.PublicURL, "/media/blog_pics/alice/post_7/images/"))
	assert.True(t, strings.HasSuffix(upload.PublicURL, ".png"))
	assert.NotContains(t, upload.PublicURL, "\\")
}

func TestResolve_TrailingSlashMediaURL(t *testing.T) {
	root := t.TempDir()
	resolver, err := NewResolver(Config{
		MediaRoot: root,
		MediaURL:  "https://cdn.example.com/media/",
	})
	require.NoError(t, err)

	upload, err := resolver.Resolve("alice", nil, "photo.png", []byte("data"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(upload.PublicURL, "https://cdn.example.com/media/blog_pics/"))
	assert.NotContains(t, upload.PublicURL, "//blog_pics")
}

func TestResolve_OriginalNameIsDiscarded(t *testing.T) {
	resolver, root := newTestResolver(t)

	upload, err := resolver.Resolve("alice", nil, "../../../etc/passwd", []byte("data"))
	require.NoError(t, err)

	// Path stays inside the media root and the hostile name contributes
	// nothing but (at most) an extension
	rel, err := filepath.Rel(root, upload.StoragePath)
	require.NoError(t, err)
	assert.False(t, strings.HasPrefix(rel, ".."))
	assert.NotContains(t, filepath.Base(upload.StoragePath), "passwd")
}

func TestResolve_HostileOwnerSegment(t *testing.T) {
	resolver, root := newTestResolver(t)

	// Owner segments that could reach outside blog_pics/<owner>/ once the
	// hostile characters are stripped. ".\x00." in particular reassembles
	// into ".." if null bytes are removed after the traversal pass.
	for _, owner := range []string{"../evil", ".\x00.", "..\x00..", "....//"} {
		upload, err := resolver.Resolve(owner, nil, "photo.png", []byte("data"))
		require.NoError(t, err)

		rel, err := filepath.Rel(root, upload.StoragePath)
		require.NoError(t, err)
		assert.False(t, strings.HasPrefix(rel, ".."), "owner %q escaped media root", owner)
		assert.NotContains(t, filepath.ToSlash(rel), "../")

		// The layout invariant holds too: every upload lives under blog_pics
		parts := strings.Split(filepath.ToSlash(rel), "/")
		require.GreaterOrEqual(t, len(parts), 4, "owner %q broke the layout", owner)
		assert.Equal(t, "blog_pics", parts[0], "owner %q broke the layout", owner)
		assert.NotContains(t, parts[1], ".")
	}
}
