package cli

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/ledgerline/taxintake/internal/wizard"
)

// uploadCategory resolves the upload bucket for the current step. An explicit
// category argument overrides it, so documents can be filed from any step.
func (a *App) uploadCategory(args []string) (wizard.Category, []string) {
	if len(args) > 0 {
		switch wizard.Category(args[0]) {
		case wizard.CategoryID, wizard.CategoryIncome, wizard.CategoryDeductions,
			wizard.CategoryCredits, wizard.CategoryGeneral:
			return wizard.Category(args[0]), args[1:]
		}
	}
	if cat := a.controller.Step().UploadCategory(); cat != "" {
		return cat, args
	}
	return wizard.CategoryGeneral, args
}

// Upload sends one or more local files to the current step's document panel:
// upload [category] <path> [path...].
func (a *App) Upload(ctx context.Context, args []string) error {
	category, paths := a.uploadCategory(args)
	if len(paths) == 0 {
		printlnFn("Usage: upload [category] <path>")
		return nil
	}

	var inputs []wizard.FileInput
	var toClose []*os.File
	defer func() {
		for _, f := range toClose {
			f.Close()
		}
	}()

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			printlnFn("error:", err)
			return err
		}
		toClose = append(toClose, f)

		info, err := f.Stat()
		if err != nil {
			printlnFn("error:", err)
			return err
		}

		inputs = append(inputs, wizard.FileInput{
			Name:     filepath.Base(path),
			MimeType: mime.TypeByExtension(filepath.Ext(path)),
			Size:     info.Size(),
			Body:     f,
		})
	}

	stored, err := a.controller.Upload(ctx, category, inputs)
	for _, sf := range stored {
		printlnFn(fmt.Sprintf("Uploaded %s (%d bytes) to %s", sf.OriginalName, sf.SizeBytes, sf.Category))
	}
	if err != nil {
		printlnFn("error:", err)
		return err
	}
	return nil
}

// Files lists the documents uploaded for the current step's category:
// files [category].
func (a *App) Files(ctx context.Context) error {
	category, _ := a.uploadCategory(nil)

	files, err := a.controller.ListFiles(ctx, category)
	if err != nil {
		printlnFn("error:", err)
		return err
	}
	if len(files) == 0 {
		printlnFn("No files in category", string(category))
		return nil
	}
	for _, f := range files {
		printlnFn(fmt.Sprintf("  %s  %s (%s, %d bytes, %s)",
			f.ID, f.OriginalName, f.MimeType, f.SizeBytes, f.CreatedAt.Format("2006-01-02 15:04")))
	}
	return nil
}

// RmFile deletes one uploaded document by its ID: rmfile <id>.
func (a *App) RmFile(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: rmfile <id>")
		return nil
	}

	category, _ := a.uploadCategory(nil)
	files, err := a.controller.ListFiles(ctx, category)
	if err != nil {
		printlnFn("error:", err)
		return err
	}

	for _, f := range files {
		if f.ID == args[0] {
			if err := a.controller.DeleteFile(ctx, f); err != nil {
				printlnFn("error:", err)
				return err
			}
			printlnFn("Deleted", f.OriginalName)
			return nil
		}
	}

	err = fmt.Errorf("no file with id %q in category %s", args[0], category)
	printlnFn("error:", err)
	return err
}
