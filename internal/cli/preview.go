package cli

import (
	"fmt"

	"github.com/pathvana/pathvana/internal/host"
	"github.com/pathvana/pathvana/internal/preview"
)

// Preview renders a bounded preview of the given file
func Preview(path string, maxLines int) error {
	h := host.NewOS()

	p, err := preview.Build(path, maxLines, h.Filetype(path))
	if err != nil {
		return fmt.Errorf("failed to build preview: %w", err)
	}

	fmt.Print(RenderPreview(p))
	return nil
}
