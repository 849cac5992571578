package easyspot

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/dustin/go-humanize"
)

// LiveBlock describes a block that has been allocated and not dropped.
type LiveBlock struct {
	Addr uintptr
	Size int
}

// LiveBlocks returns the blocks currently live, ordered by address.
// Release builds do not track blocks and always return nil.
func LiveBlocks() []LiveBlock {
	if !Debug {
		return nil
	}
	recs := live.Records()
	out := make([]LiveBlock, 0, len(recs))
	for _, rec := range recs {
		out = append(out, LiveBlock{Addr: rec.Block, Size: int(rec.Size)})
	}
	slices.SortFunc(out, func(a, b LiveBlock) int {
		return cmp.Compare(a.Addr, b.Addr)
	})
	return out
}

// LiveCount returns the number of live blocks. Always 0 in release builds.
func LiveCount() int {
	if !Debug {
		return 0
	}
	return live.Len()
}

// LiveBytes returns the total payload size of live blocks. Always 0 in
// release builds.
func LiveBytes() int {
	if !Debug {
		return 0
	}
	return int(live.Bytes())
}

// ReportLeaks writes one line per live block to w, followed by a summary,
// and returns the number of live blocks. Call it at program exit to find
// blocks that were never dropped. Release builds report nothing.
func ReportLeaks(w io.Writer) int {
	blocks := LiveBlocks()
	total := 0
	for _, b := range blocks {
		total += b.Size
		fmt.Fprintf(w, "  %#x  %s\n", b.Addr, humanize.IBytes(uint64(b.Size)))
	}

	switch {
	case !Debug:
		fmt.Fprintln(w, "easyspot: leak check needs a build with -tags easyspot_debug")
	case len(blocks) == 0:
		fmt.Fprintln(w, "easyspot: no undropped blocks")
	default:
		fmt.Fprintf(w, "easyspot: %s undropped blocks, %s\n",
			humanize.Comma(int64(len(blocks))), humanize.IBytes(uint64(total)))
	}

	state.logger.LogLeaks(len(blocks), total)
	return len(blocks)
}
