package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lixenwraith/haliteviz/logger"
	"github.com/lixenwraith/haliteviz/replay"
)

// convert re-encodes src to dst; .json writes plain JSON, anything else zlib-compressed msgpack
func convert(src, dst string) error {
	r, err := replay.Load(src)
	if err != nil {
		return err
	}

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}

	if strings.EqualFold(filepath.Ext(dst), ".json") {
		err = replay.Encode(f, r, replay.FormatJSON)
	} else {
		err = replay.EncodeCompressed(f, r, replay.FormatMsgpack)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", dst, err)
	}

	logger.For("convert").WithField("path", dst).Info("replay written")
	return nil
}
