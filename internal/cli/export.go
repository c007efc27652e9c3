package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/terraincognita07/beanleaf/internal/catalogfile"
	"github.com/terraincognita07/beanleaf/internal/services"
)

func RunExportCommand(ctx context.Context, out io.Writer, source services.CatalogSource, format string) error {
	parsedFormat, err := catalogfile.ParseFormat(format)
	if err != nil {
		return err
	}
	if source == nil {
		source = services.BuiltinCatalogSource{}
	}

	catalog, err := source.LoadCatalog(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	if err := catalogfile.Encode(out, catalog, parsedFormat); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return nil
}
