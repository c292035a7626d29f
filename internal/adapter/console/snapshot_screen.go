package console

import (
	"context"

	"github.com/iho/fintrack/internal/adapter/snapshot"
)

// SnapshotScreen drives export and import of the full store. The codec is
// picked from the file extension, falling back to the configured default
// format when the path has none.
type SnapshotScreen struct {
	io            *Console
	exporter      *snapshot.Exporter
	importer      *snapshot.Importer
	defaultPath   string
	defaultFormat string
}

func NewSnapshotScreen(io *Console, exporter *snapshot.Exporter, importer *snapshot.Importer, defaultPath, defaultFormat string) *SnapshotScreen {
	return &SnapshotScreen{
		io:            io,
		exporter:      exporter,
		importer:      importer,
		defaultPath:   defaultPath,
		defaultFormat: defaultFormat,
	}
}

func (s *SnapshotScreen) Title() string { return "Import / Export" }

func (s *SnapshotScreen) Show(ctx context.Context) error {
	for {
		choice, err := s.io.Choose(s.Title(), []string{
			"Export everything", "Import from file", "Back",
		})
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			err = s.export(ctx)
		case 1:
			err = s.importFrom(ctx)
		case 2:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *SnapshotScreen) promptTarget() (string, snapshot.Codec, error) {
	path, err := s.io.PromptOptional("File path (default " + s.defaultPath + ")")
	if err != nil {
		return "", nil, err
	}
	if path == "" {
		path = s.defaultPath
	}
	codec, err := snapshot.ByPath(path)
	if err != nil {
		codec, err = snapshot.ByFormat(s.defaultFormat)
	}
	if err != nil {
		return "", nil, err
	}
	return path, codec, nil
}

func (s *SnapshotScreen) export(ctx context.Context) error {
	path, codec, err := s.promptTarget()
	if err != nil {
		return err
	}
	if err := s.exporter.RunWith(ctx, path, codec); err != nil {
		return err
	}
	s.io.Printf("Exported to %s (%s)", path, codec.Format())
	return nil
}

func (s *SnapshotScreen) importFrom(ctx context.Context) error {
	path, codec, err := s.promptTarget()
	if err != nil {
		return err
	}
	if err := s.importer.RunWith(ctx, path, codec); err != nil {
		return err
	}
	s.io.Printf("Imported from %s", path)
	return nil
}
