package cli

import (
	"context"
	"fmt"
)

func (a *App) listAlbums(ctx context.Context) {
	albums, err := a.albums.List(ctx)
	if err != nil {
		a.errorf("%v", err)
		return
	}
	if len(albums) == 0 {
		fmt.Fprintln(a.out, "No albums")
		return
	}
	fmt.Fprintln(a.out, renderAlbums(albums))
}

func (a *App) album(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: album create | show <id> | update <id> | delete <id> | add <id> <image-id...> | rm <id> <image-id>")
		return
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "create":
		a.createAlbum(ctx)
	case "show":
		a.showAlbum(ctx, rest)
	case "update":
		a.updateAlbum(ctx, rest)
	case "delete":
		a.deleteAlbum(ctx, rest)
	case "add":
		a.addToAlbum(ctx, rest)
	case "rm":
		a.removeFromAlbum(ctx, rest)
	default:
		fmt.Fprintln(a.out, "Unknown album subcommand:", sub)
	}
}

func (a *App) createAlbum(ctx context.Context) {
	name, err := getSimpleText(a.reader, "Enter album name", a.out)
	if err != nil {
		a.errorf("%v", err)
		return
	}
	description, err := getSimpleText(a.reader, "Enter description (optional)", a.out)
	if err != nil {
		a.errorf("%v", err)
		return
	}

	album, err := a.albums.Create(ctx, name, description)
	if err != nil {
		a.errorf("%v", err)
		return
	}
	fmt.Fprintf(a.out, "Created album %s (%s)\n", album.Name, album.ID)
}

func (a *App) showAlbum(ctx context.Context, args []string) {
	id, ok := a.argOrPrompt(args, "Enter album id")
	if !ok {
		return
	}

	album, err := a.albums.Get(ctx, id)
	if err != nil {
		a.errorf("%v", err)
		return
	}

	fmt.Fprintf(a.out, "%s: %s (%d images)\n", album.Name, album.Description, album.ImageCount)

	recs, err := a.albums.Images(ctx, id)
	if err != nil {
		a.errorf("%v", err)
		return
	}
	if len(recs) > 0 {
		fmt.Fprintln(a.out, renderRecords(recs))
	}
}

func (a *App) updateAlbum(ctx context.Context, args []string) {
	id, ok := a.argOrPrompt(args, "Enter album id to update")
	if !ok {
		return
	}

	name, err := getSimpleText(a.reader, "Enter new name (empty keeps current)", a.out)
	if err != nil {
		a.errorf("%v", err)
		return
	}
	description, err := getSimpleText(a.reader, "Enter new description (empty keeps current)", a.out)
	if err != nil {
		a.errorf("%v", err)
		return
	}
	if name == "" && description == "" {
		fmt.Fprintln(a.out, "Nothing to update")
		return
	}

	album, err := a.albums.Update(ctx, id, name, description)
	if err != nil {
		a.errorf("%v", err)
		return
	}
	fmt.Fprintf(a.out, "Updated album %s (%s)\n", album.Name, album.ID)
}

func (a *App) deleteAlbum(ctx context.Context, args []string) {
	id, ok := a.argOrPrompt(args, "Enter album id to delete")
	if !ok {
		return
	}

	confirmed, err := GetConfirmation(a.reader, fmt.Sprintf("Delete album %s? Records are kept.", id), a.out)
	if err != nil {
		a.errorf("%v", err)
		return
	}
	if !confirmed {
		return
	}

	if err := a.albums.Delete(ctx, id); err != nil {
		a.errorf("%v", err)
		return
	}
	fmt.Fprintln(a.out, "Deleted")
}

func (a *App) addToAlbum(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(a.out, "Usage: album add <id> <image-id...>")
		return
	}

	if err := a.albums.AddImages(ctx, args[0], args[1:]); err != nil {
		a.errorf("%v", err)
		return
	}
	fmt.Fprintf(a.out, "Added %d image(s)\n", len(args)-1)
}

func (a *App) removeFromAlbum(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(a.out, "Usage: album rm <id> <image-id>")
		return
	}

	if err := a.albums.RemoveImage(ctx, args[0], args[1]); err != nil {
		a.errorf("%v", err)
		return
	}
	fmt.Fprintln(a.out, "Removed")
}
