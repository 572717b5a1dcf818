package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) list(ctx context.Context) {
	recs, err := a.library.List(ctx)
	if err != nil {
		a.errorf("%v", err)
		return
	}
	if len(recs) == 0 {
		fmt.Fprintln(a.out, "No records. Upload something or run 'refresh'.")
		return
	}
	fmt.Fprintln(a.out, renderRecords(recs))
}

func (a *App) refresh(ctx context.Context) {
	if err := a.library.Refresh(ctx); err != nil {
		a.errorf("%v", err)
		return
	}
	a.list(ctx)
}

func (a *App) show(ctx context.Context, args []string) {
	id, ok := a.argOrPrompt(args, "Enter record id to show")
	if !ok {
		return
	}

	rec, err := a.library.Get(ctx, id)
	if err != nil {
		a.errorf("%v", err)
		return
	}

	fmt.Fprintf(a.out, "ID:       %s\n", rec.ID)
	fmt.Fprintf(a.out, "Filename: %s\n", rec.OriginalFilename)
	fmt.Fprintf(a.out, "Type:     %s\n", rec.MimeType)
	fmt.Fprintf(a.out, "Status:   %s\n", rec.Status)
	fmt.Fprintf(a.out, "Tags:     %s\n", strings.Join(rec.TagNames(), ", "))
	fmt.Fprintf(a.out, "Created:  %s\n", rec.CreatedAt)
	if rec.URL != "" {
		fmt.Fprintf(a.out, "URL:      %s\n", rec.URL)
	}
}

func (a *App) deleteRecord(ctx context.Context, args []string) {
	id, ok := a.argOrPrompt(args, "Enter record id to delete")
	if !ok {
		return
	}

	confirmed, err := GetConfirmation(a.reader, fmt.Sprintf("Delete record %s?", id), a.out)
	if err != nil {
		a.errorf("%v", err)
		return
	}
	if !confirmed {
		return
	}

	if err := a.library.Delete(ctx, id); err != nil {
		a.errorf("%v", err)
		return
	}
	fmt.Fprintln(a.out, "Deleted")
}

func (a *App) search(ctx context.Context, args []string) {
	query := strings.Join(args, " ")
	if query == "" {
		var ok bool
		query, ok = a.argOrPrompt(nil, "Enter search query")
		if !ok {
			return
		}
	}

	res, err := a.library.Search(ctx, query)
	if err != nil {
		a.errorf("%v", err)
		return
	}
	if res.Total == 0 {
		fmt.Fprintln(a.out, "No matches")
		return
	}
	fmt.Fprintf(a.out, "%d match(es)\n", res.Total)
	fmt.Fprintln(a.out, renderRecords(res.Images))
}

// argOrPrompt takes the first positional argument if present, otherwise asks
// interactively. ok is false when the prompt failed or produced nothing.
func (a *App) argOrPrompt(args []string, prompt string) (string, bool) {
	if len(args) > 0 {
		return args[0], true
	}
	value, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		a.errorf("%v", err)
		return "", false
	}
	if value == "" {
		return "", false
	}
	return value, true
}
