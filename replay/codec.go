package replay

import (
	"bufio"
	"compress/zlib"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/haliteviz/logger"
)

// Format selects the payload encoding
type Format int

const (
	FormatMsgpack Format = iota
	FormatJSON
)

func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "msgpack"
}

// zlibMagic is the first byte of a deflate stream with the default window
const zlibMagic = 0x78

// Load reads and decodes a replay file
func Load(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open replay: %w", err)
	}
	defer f.Close()

	r, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	logger.For("replay").WithFields(logrus.Fields{
		"path":    path,
		"frames":  r.FrameCount(),
		"planets": len(r.Planets),
		"players": r.NumPlayers,
	}).Info("replay loaded")

	return r, nil
}

// Decode reads a replay, inflating zlib streams and sniffing JSON versus msgpack
func Decode(src io.Reader) (*Replay, error) {
	br := bufio.NewReader(src)
	head, err := br.Peek(1)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrMalformed)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	if head[0] == zlibMagic {
		zr, err := zlib.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("inflate: %w", err)
		}
		defer zr.Close()
		br = bufio.NewReader(zr)
		if head, err = br.Peek(1); err != nil {
			return nil, fmt.Errorf("%w: empty compressed payload", ErrMalformed)
		}
	}

	var w wireReplay
	if isJSONStart(head[0]) {
		if err := json.NewDecoder(br).Decode(&w); err != nil {
			return nil, fmt.Errorf("%w: json: %v", ErrMalformed, err)
		}
	} else {
		dec := msgpack.NewDecoder(br)
		dec.SetCustomStructTag("json")
		dec.UseLooseInterfaceDecoding(true)
		if err := dec.Decode(&w); err != nil {
			return nil, fmt.Errorf("%w: msgpack: %v", ErrMalformed, err)
		}
	}

	r, err := w.toReplay()
	if err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Encode writes the replay in the recorded layout
func Encode(dst io.Writer, r *Replay, format Format) error {
	w := fromReplay(r)
	switch format {
	case FormatJSON:
		if err := json.NewEncoder(dst).Encode(w); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	default:
		enc := msgpack.NewEncoder(dst)
		enc.SetCustomStructTag("json")
		if err := enc.Encode(w); err != nil {
			return fmt.Errorf("encode msgpack: %w", err)
		}
	}
	return nil
}

// EncodeCompressed writes a zlib-compressed replay
func EncodeCompressed(dst io.Writer, r *Replay, format Format) error {
	zw := zlib.NewWriter(dst)
	if err := Encode(zw, r, format); err != nil {
		zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("deflate: %w", err)
	}
	return nil
}

func isJSONStart(b byte) bool {
	switch b {
	case '{', ' ', '\t', '\n', '\r':
		return true
	}
	return false
}
