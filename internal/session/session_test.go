package session

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satococoa/deskshell/internal/errors"
	"github.com/satococoa/deskshell/internal/testutil"
)

func TestNew(t *testing.T) {
	t.Run("should start in HOME", func(t *testing.T) {
		t.Setenv("HOME", "/home/tester")

		sess := New()

		assert.Equal(t, "/home/tester", sess.Dir())
		assert.NotEmpty(t, sess.ID())
	})

	t.Run("should fall back to root when HOME is unset", func(t *testing.T) {
		t.Setenv("HOME", "")

		sess := New()

		assert.Equal(t, "/", sess.Dir())
	})

	t.Run("should not validate the initial directory", func(t *testing.T) {
		t.Setenv("HOME", "/definitely/not/here")

		sess := New()

		assert.Equal(t, "/definitely/not/here", sess.Dir())
	})

	t.Run("should assign distinct ids", func(t *testing.T) {
		assert.NotEqual(t, NewAt("/").ID(), NewAt("/").ID())
	})
}

func TestIsChangeDirectory(t *testing.T) {
	tests := []struct {
		line     string
		expected bool
	}{
		{line: "cd", expected: true},
		{line: "cd ", expected: true},
		{line: "  cd /tmp  ", expected: true},
		{line: "cd\tsrc", expected: true},
		{line: "cd ~", expected: true},
		{line: "cdrecord", expected: false},
		{line: "echo cd", expected: false},
		{line: "", expected: false},
		{line: "ls", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsChangeDirectory(tt.line))
		})
	}
}

func TestChangeDirectory_Home(t *testing.T) {
	for _, line := range []string{"cd", "cd ", "cd ~", "  cd   ~  "} {
		t.Run(line, func(t *testing.T) {
			// Given: a session away from an existing home
			tree := testutil.NewDirTree(t, "work")
			t.Setenv("HOME", tree.Root)
			sess := NewAt(tree.Path("work"))

			// When: changing to home
			out, err := sess.ChangeDirectory(line)

			// Then: the session is at the canonical home with a message
			require.NoError(t, err)
			assert.Equal(t, "Changed directory to "+tree.Root, out)
			assert.Equal(t, tree.Canonical(""), sess.Dir())
		})
	}
}

func TestChangeDirectory_TildeSlash(t *testing.T) {
	// Given: a home with a nested directory
	tree := testutil.NewDirTree(t, "projects/app")
	t.Setenv("HOME", tree.Root)
	sess := NewAt("/")

	// When: changing with a ~/ prefix
	out, err := sess.ChangeDirectory("cd ~/projects/app")

	// Then: the directory is resolved under home silently
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, tree.Canonical("projects/app"), sess.Dir())
}

func TestChangeDirectory_Absolute(t *testing.T) {
	tree := testutil.NewDirTree(t, "abs/target")
	sess := NewAt("/")

	out, err := sess.ChangeDirectory("cd " + tree.Path("abs/target"))

	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, tree.Canonical("abs/target"), sess.Dir())
}

func TestChangeDirectory_Relative(t *testing.T) {
	t.Run("should resolve against the session directory", func(t *testing.T) {
		// Given: a session in D with child src
		tree := testutil.NewDirTree(t, "src/pkg")
		sess := NewAt(tree.Canonical(""))

		// When: cd into a relative path
		out, err := sess.ChangeDirectory("cd src/pkg")

		// Then: the canonical join of D and the argument is adopted
		require.NoError(t, err)
		assert.Empty(t, out)
		assert.Equal(t, tree.Canonical("src/pkg"), sess.Dir())
	})

	t.Run("should resolve parent references", func(t *testing.T) {
		tree := testutil.NewDirTree(t, "a/b", "c")
		sess := NewAt(tree.Canonical("a/b"))

		_, err := sess.ChangeDirectory("cd ../../c")

		require.NoError(t, err)
		assert.Equal(t, tree.Canonical("c"), sess.Dir())
	})

	t.Run("should keep directory names containing spaces", func(t *testing.T) {
		tree := testutil.NewDirTree(t, "my dir")
		sess := NewAt(tree.Canonical(""))

		_, err := sess.ChangeDirectory("cd my dir")

		require.NoError(t, err)
		assert.Equal(t, tree.Canonical("my dir"), sess.Dir())
	})

	t.Run("should treat ~foo as a relative name", func(t *testing.T) {
		// Given: a directory literally named ~foo under the session directory
		tree := testutil.NewDirTree(t, "~foo")
		t.Setenv("HOME", "/nonexistent-home")
		sess := NewAt(tree.Canonical(""))

		// When: cd ~foo
		_, err := sess.ChangeDirectory("cd ~foo")

		// Then: it is found relative to the session, not via user-home expansion
		require.NoError(t, err)
		assert.Equal(t, tree.Canonical("~foo"), sess.Dir())
	})
}

func TestChangeDirectory_Symlink(t *testing.T) {
	// Given: a symlink pointing at a real directory
	tree := testutil.NewDirTree(t, "real")
	require.NoError(t, os.Symlink(tree.Path("real"), tree.Path("link")))
	sess := NewAt(tree.Canonical(""))

	// When: cd through the link
	_, err := sess.ChangeDirectory("cd link")

	// Then: the session stores the resolved target
	require.NoError(t, err)
	assert.Equal(t, tree.Canonical("real"), sess.Dir())
}

func TestChangeDirectory_Failures(t *testing.T) {
	t.Run("nonexistent path leaves directory unchanged", func(t *testing.T) {
		tree := testutil.NewDirTree(t)
		start := tree.Canonical("")
		sess := NewAt(start)

		out, err := sess.ChangeDirectory("cd does/not/exist")

		require.Error(t, err)
		assert.Empty(t, out)
		assert.Equal(t, "cd: no such directory: does/not/exist", err.Error())
		assert.Equal(t, errors.KindValidation, errors.KindOf(err))
		assert.Equal(t, start, sess.Dir())
	})

	t.Run("regular file is not a directory", func(t *testing.T) {
		tree := testutil.NewDirTree(t)
		tree.WriteFile("notes.txt", "hello")
		start := tree.Canonical("")
		sess := NewAt(start)

		_, err := sess.ChangeDirectory("cd notes.txt")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "notes.txt")
		assert.Equal(t, start, sess.Dir())
	})

	t.Run("missing home directory", func(t *testing.T) {
		t.Setenv("HOME", filepath.Join(t.TempDir(), "gone"))
		sess := NewAt("/")

		_, err := sess.ChangeDirectory("cd ~/x")

		require.Error(t, err)
		assert.Equal(t, "cd: no such directory: ~/x", err.Error())
		assert.Equal(t, "/", sess.Dir())
	})
}

func TestSession_ConcurrentAccess(t *testing.T) {
	// Given: a session and two sibling directories
	tree := testutil.NewDirTree(t, "a", "b")
	sess := NewAt(tree.Canonical(""))

	// When: reads and changes run concurrently
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			target := tree.Path("a")
			if i%2 == 0 {
				target = tree.Path("b")
			}
			_, _ = sess.ChangeDirectory("cd " + target)
		}(i)
		go func() {
			defer wg.Done()
			_ = sess.Dir()
		}()
	}
	wg.Wait()

	// Then: the final directory is one of the valid targets
	assert.Contains(t, []string{tree.Canonical("a"), tree.Canonical("b")}, sess.Dir())
}
