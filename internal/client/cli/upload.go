package cli

import (
	"context"
	"fmt"
)

func (a *App) upload(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: upload <file> [file...]")
		return
	}

	onProgress := func(percent float64) {
		fmt.Fprintf(a.out, "\rUploading... %3.0f%%", percent)
	}

	items, err := a.uploads.Upload(ctx, args, onProgress)
	fmt.Fprintln(a.out)

	failed := 0
	for _, item := range items {
		if item.Failed() {
			failed++
		}
	}

	fmt.Fprintln(a.out, renderUploadResults(items))
	if err != nil {
		a.errorf("upload aborted: %v", err)
	} else if failed > 0 {
		fmt.Fprintf(a.out, "%d of %d file(s) failed\n", failed, len(items))
	} else {
		fmt.Fprintf(a.out, "%d file(s) uploaded\n", len(items))
	}
}
