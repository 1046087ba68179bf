// Command otf2dump prints the decoded contents of a trace's
// definitions and event streams.
package main

import (
	"bufio"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tracefmt/otf2go/defs"
	"github.com/tracefmt/otf2go/idref"
	"github.com/tracefmt/otf2go/trace"
)

func main() {
	var (
		flagDefs     = flag.String("defs", "", "global-definitions `file`")
		flagLocation = flag.Uint64("location", 0, "location id of the event stream `file` given as a positional argument")
	)
	flag.Parse()

	if *flagDefs != "" {
		if err := dumpDefs(*flagDefs); err != nil {
			log.Fatal(err)
		}
	}

	if flag.NArg() > 0 {
		if err := dumpEvents(flag.Arg(0), idref.LocationRef(*flagLocation)); err != nil {
			log.Fatal(err)
		}
	}

	if *flagDefs == "" && flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}
}

func dumpDefs(path string) error {
	src, err := openFileChunkSource(path)
	if err != nil {
		return err
	}
	r := defs.NewReader(src)
	for r.Next() {
		fmt.Printf("%s %+v\n", r.Record.Kind(), r.Record)
	}
	return r.Err()
}

func dumpEvents(path string, loc idref.LocationRef) error {
	src, err := openFileChunkSource(path)
	if err != nil {
		return err
	}
	er := trace.NewEventReader(loc, src, nil)
	for er.Next() {
		fmt.Printf("%s %+v\n", er.Record.Kind(), er.Record)
	}
	return er.Err()
}

// fileChunkSource reads a length-prefixed chunk stream off disk: each
// chunk is a uint32 big-endian byte count followed by that many bytes,
// the simplest on-disk rendition of the chunked stream this tool can
// read back without a full archive directory layout.
type fileChunkSource struct {
	r *bufio.Reader
	f *os.File
}

func openFileChunkSource(path string) (*fileChunkSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &fileChunkSource{r: bufio.NewReader(f), f: f}, nil
}

func (s *fileChunkSource) NextChunk() ([]byte, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(s.r, lenBuf[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		return nil, err
	}
	n := binary.BigEndian.Uint32(lenBuf[:])
	buf := make([]byte, n)
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
