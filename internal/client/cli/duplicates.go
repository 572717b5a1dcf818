package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/photokeeper/internal/client/models"
)

func (a *App) listDuplicates(ctx context.Context) {
	groups, err := a.duplicates.Groups(ctx)
	if err != nil {
		a.errorf("%v", err)
		return
	}
	if len(groups) == 0 {
		fmt.Fprintln(a.out, "No duplicates found")
		return
	}

	// Kept so a following "resolve <group> <keep-id>" can refer to a group
	// by the number just shown.
	a.lastGroups = groups

	fmt.Fprintln(a.out, renderDuplicateGroups(groups))
	fmt.Fprintln(a.out, "Use: resolve <group> <keep-id> to keep one record and delete the rest")
}

func (a *App) resolveDuplicates(ctx context.Context, args []string) {
	if len(a.lastGroups) == 0 {
		fmt.Fprintln(a.out, "Run 'dups' first")
		return
	}
	if len(args) < 2 {
		fmt.Fprintln(a.out, "Usage: resolve <group> <keep-id>")
		return
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(a.lastGroups) {
		a.errorf("no such group: %s", args[0])
		return
	}
	group := a.lastGroups[n-1]
	keepID := args[1]

	if !groupContains(group, keepID) {
		a.errorf("record %s is not part of group %d", keepID, n)
		return
	}

	confirmed, err := GetConfirmation(a.reader,
		fmt.Sprintf("Keep %s and delete the other %d record(s)?", keepID, len(group.Images)-1), a.out)
	if err != nil {
		a.errorf("%v", err)
		return
	}
	if !confirmed {
		return
	}

	err = a.duplicates.Resolve(ctx, group, keepID)

	// Deletions were attempted whatever the outcome, so the listing no
	// longer reflects the server; force a re-fetch before the next resolve.
	a.lastGroups = nil

	if err != nil {
		a.errorf("%v", err)
		return
	}
	fmt.Fprintln(a.out, "Resolved")
}

func groupContains(group models.DuplicateGroup, id string) bool {
	for _, rec := range group.Images {
		if rec.ID == id {
			return true
		}
	}
	return false
}
