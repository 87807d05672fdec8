package web

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sportsworldcentral/swc_api/bulk"
	"github.com/unrolled/render"
)

type exportFunc func(ctx context.Context, format bulk.Format) ([]byte, error)

// bulkFileHandler serves a full-table export. The format query parameter
// selects csv (the default) or parquet; filters never apply here.
func bulkFileHandler(export exportFunc, name string, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format, err := bulk.ParseFormat(r.URL.Query().Get("format"))
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		data, err := export(r.Context(), format)
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err.Error())
			return
		}

		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, name, format))
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
