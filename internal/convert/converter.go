// Package convert applies a keymap.LineRewriter to a whole keymap file:
// backup, line by line rewrite, header prepend and in-place write.
package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/creachadair/atomicfile"

	ilog "github.com/Alia5/zmkjis/internal/log"
	"github.com/Alia5/zmkjis/keymap"
)

// DefaultBackupSuffix is appended to the input path to name the backup.
const DefaultBackupSuffix = "_original"

// Options configures a Converter. Zero values fall back to the defaults.
type Options struct {
	Rewriter     keymap.LineRewriter
	Header       string
	BackupSuffix string
	Logger       *slog.Logger
}

// Converter rewrites keymaps with a single LineRewriter and header.
type Converter struct {
	rw     keymap.LineRewriter
	header string
	suffix string
	logger *slog.Logger

	open  func(name string) (io.ReadCloser, error)
	write func(path string, data []byte, perm fs.FileMode) error
}

// Change records one rewritten line. Line is 1-based and counts lines of
// the input, not of the output.
type Change struct {
	Line int
	Old  string
	New  string
}

// Output is the result of an in-memory conversion.
type Output struct {
	Body    []byte
	Lines   int
	Changes []Change
}

// Content is the header followed by the converted body.
func (o *Output) Content(header string) []byte {
	out := make([]byte, 0, len(header)+len(o.Body))
	out = append(out, header...)
	return append(out, o.Body...)
}

// Result describes a completed file conversion.
type Result struct {
	Path         string
	BackupPath   string
	Lines        int
	LinesChanged int
	Changes      []Change
}

// New returns a Converter for o.
func New(o Options) *Converter {
	if o.BackupSuffix == "" {
		o.BackupSuffix = DefaultBackupSuffix
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Converter{
		rw:     o.Rewriter,
		header: o.Header,
		suffix: o.BackupSuffix,
		logger: o.Logger,
		open:   openFile,
		write:  writeFile,
	}
}

// BackupPath returns the backup location for path.
func (c *Converter) BackupPath(path string) string {
	return path + c.suffix
}

// Convert rewrites every line read from r. Line terminators are kept as
// they are; a rewrite only ever sees the line content.
func (c *Converter) Convert(r io.Reader) (*Output, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	out := &Output{}
	var body bytes.Buffer
	body.Grow(len(data))

	for rest := string(data); rest != ""; {
		line, eol := rest, ""
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			line, eol, rest = rest[:i], "\n", rest[i+1:]
			if strings.HasSuffix(line, "\r") {
				line, eol = line[:len(line)-1], "\r\n"
			}
		} else {
			rest = ""
		}
		out.Lines++

		conv, changed := c.rw.Rewrite(line)
		if changed {
			out.Changes = append(out.Changes, Change{Line: out.Lines, Old: line, New: conv})
			c.logger.Debug("Converted line", "line", out.Lines, "old", line, "new", conv)
		} else {
			c.logger.Log(context.Background(), ilog.LevelTrace, "Line unchanged", "line", out.Lines, "text", line)
		}
		body.WriteString(conv)
		body.WriteString(eol)
	}

	out.Body = body.Bytes()
	return out, nil
}

// ConvertFile converts the keymap at path in place after copying it to
// BackupPath(path). The backup is the only recovery path when the final
// write fails. A symlinked path is written through to its target.
func (c *Converter) ConvertFile(path string) (*Result, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrRead, path)
	}

	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	backup := c.BackupPath(path)
	if err := copyFile(target, backup, fi.Mode().Perm()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackup, err)
	}
	c.logger.Info("Backup created", "path", backup)

	in, err := c.open(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	out, err := c.Convert(in)
	_ = in.Close()
	if err != nil {
		return nil, err
	}

	if err := c.write(target, out.Content(c.header), fi.Mode().Perm()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	c.logger.Info("Conversion completed", "path", path)

	return &Result{
		Path:         path,
		BackupPath:   backup,
		Lines:        out.Lines,
		LinesChanged: len(out.Changes),
		Changes:      out.Changes,
	}, nil
}

func openFile(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

func copyFile(src, dst string, perm fs.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := atomicfile.New(dst, perm)
	if err != nil {
		return err
	}
	defer out.Cancel()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

func writeFile(path string, data []byte, perm fs.FileMode) error {
	out, err := atomicfile.New(path, perm)
	if err != nil {
		return err
	}
	defer out.Cancel()

	if _, err := out.Write(data); err != nil {
		return err
	}
	return out.Close()
}
