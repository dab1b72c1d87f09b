// Package snapshot persists arena counter values to files.
//
// A snapshot stores the raw counter bytes of one arena together with a
// layout signature of the registry that produced them. Loading verifies the
// signature, so values are only ever restored into a registry with the
// identical counter layout; snapshots are not a cross-version interchange
// format. Payloads carry a CRC-32 and may be compressed (zstd, lz4).
package snapshot

import (
	"context"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/statgo"
)

// Options configures snapshot operations.
type Options struct {
	// Compression selects the payload compression: CompressionNone
	// (default), CompressionZstd, or CompressionLZ4. Reads detect the
	// compression from the file header and ignore this field.
	Compression string

	// Logger receives debug output for save/load operations.
	Logger *statgo.Logger

	// Metrics is notified after each write and restore.
	Metrics statgo.MetricsCollector
}

func applyOptions(optFns []func(*Options)) Options {
	opts := Options{
		Compression: CompressionNone,
		Logger:      statgo.NoopLogger(),
		Metrics:     statgo.NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = statgo.NoopLogger()
	}
	if opts.Metrics == nil {
		opts.Metrics = statgo.NoopMetricsCollector{}
	}
	return opts
}

// Write streams a snapshot of a's counter values to w. Only the bytes up to
// the registry's high-water offset are persisted; the remaining arena
// capacity is padding for counters that were never declared.
func Write(w io.Writer, reg *statgo.Registry, a *statgo.Arena, optFns ...func(*Options)) (err error) {
	opts := applyOptions(optFns)
	start := time.Now()

	payload := a.Bytes()[:reg.HighWater()]
	defer func() {
		opts.Metrics.RecordSnapshot("write", len(payload), time.Since(start), err)
	}()
	h := header{
		Magic:    Magic,
		Version:  Version,
		Layout:   reg.LayoutSignature(),
		Size:     uint32(len(payload)),
		Checksum: crc32.ChecksumIEEE(payload),
	}
	if !setCompressionName(&h, opts.Compression) {
		return fmt.Errorf("%w: %q", ErrUnknownCompression, opts.Compression)
	}

	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return fmt.Errorf("snapshot: write header: %w", err)
	}

	cw, err := newCompressor(opts.Compression, w)
	if err != nil {
		return err
	}
	if _, err := cw.Write(payload); err != nil {
		_ = cw.Close()
		return fmt.Errorf("snapshot: write payload: %w", err)
	}
	if err := cw.Close(); err != nil {
		return fmt.Errorf("snapshot: flush payload: %w", err)
	}

	opts.Logger.Debug("snapshot written",
		"bytes", len(payload),
		"compression", opts.Compression,
	)
	return nil
}

// Read restores counter values from r into a. The snapshot must have been
// written by a registry whose layout signature equals reg's; otherwise
// ErrLayoutMismatch is returned and a is untouched. On success, bytes
// beyond the persisted payload are zeroed.
func Read(r io.Reader, reg *statgo.Registry, a *statgo.Arena, optFns ...func(*Options)) (err error) {
	opts := applyOptions(optFns)
	start := time.Now()

	restored := 0
	defer func() {
		opts.Metrics.RecordSnapshot("read", restored, time.Since(start), err)
	}()

	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return fmt.Errorf("snapshot: read header: %w", err)
	}
	if h.Magic != Magic {
		return ErrInvalidMagic
	}
	if h.Version != Version {
		return fmt.Errorf("%w: 0x%08x", ErrInvalidVersion, h.Version)
	}
	if h.Layout != reg.LayoutSignature() {
		return ErrLayoutMismatch
	}
	if int(h.Size) > a.Capacity() {
		return fmt.Errorf("%w: %d > %d", ErrPayloadTooLarge, h.Size, a.Capacity())
	}

	dr, err := newDecompressor(compressionName(&h), r)
	if err != nil {
		return err
	}
	defer dr.Close()

	payload := make([]byte, h.Size)
	if _, err := io.ReadFull(dr, payload); err != nil {
		return fmt.Errorf("snapshot: read payload: %w", err)
	}
	if crc32.ChecksumIEEE(payload) != h.Checksum {
		return ErrChecksum
	}

	a.Reset()
	copy(a.Bytes(), payload)
	restored = len(payload)
	return nil
}

// Save writes a snapshot of a to the file at path, creating or truncating
// it.
func Save(path string, reg *statgo.Registry, a *statgo.Arena, optFns ...func(*Options)) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: create %s: %w", path, err)
	}
	if err := Write(f, reg, a, optFns...); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Load restores counter values into a from the file at path.
func Load(path string, reg *statgo.Registry, a *statgo.Arena, optFns ...func(*Options)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("snapshot: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, reg, a, optFns...)
}

// SaveAll writes one snapshot file per arena into dir, named <key>.stats.
// Files for distinct arenas are written concurrently; the first failure
// cancels the remaining writes.
func SaveAll(ctx context.Context, dir string, reg *statgo.Registry, arenas map[string]*statgo.Arena, optFns ...func(*Options)) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("snapshot: create dir %s: %w", dir, err)
	}

	g, ctx := errgroup.WithContext(ctx)
	for name, a := range arenas {
		name, a := name, a
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return Save(filepath.Join(dir, name+".stats"), reg, a, optFns...)
		})
	}
	return g.Wait()
}
