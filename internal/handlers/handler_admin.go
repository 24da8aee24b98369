package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"storefront-gateway/internal/middlewares"
)

const maxUploadBytes = 10 << 20

// GETAdminCatalogListHandler lists admin products or categories, paging
// 10 at a time unless the client asks otherwise.
func GETAdminCatalogListHandler(ctx *middlewares.AppContext) {
	req := upstream(ctx)
	req.Query = pageQuery(ctx.Request, "0", "10")

	resp := forward(ctx, req)
	if resp == nil {
		return
	}

	relay(ctx, resp)
}

// ForwardAndPurge proxies an admin catalog mutation and drops every cached
// catalog response once the backend accepts it.
func ForwardAndPurge(ctx *middlewares.AppContext) {
	req := upstream(ctx)
	if !readBody(ctx, &req) {
		return
	}

	resp := forward(ctx, req)
	if resp == nil {
		return
	}

	purgeCatalog(ctx)
	relay(ctx, resp)
}

// POSTImageUploadHandler re-encodes the uploaded "file" part for the backend.
func POSTImageUploadHandler(ctx *middlewares.AppContext) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Response, ctx.Request.Body, maxUploadBytes)

	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			ctx.SetJSONError(http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		ctx.SetJSONError(http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	body, contentType, err := encodeUpload(file, header)
	if err != nil {
		ctx.Logger.Error("failed to encode upload", "filename", header.Filename, "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	req := upstream(ctx)
	req.Body = body
	req.ContentType = contentType

	resp := forward(ctx, req)
	if resp == nil {
		return
	}

	ctx.Logger.Info("Image uploaded", "path", req.Path, "filename", header.Filename, "size", header.Size)
	purgeCatalog(ctx)
	relay(ctx, resp)
}

func encodeUpload(file multipart.File, header *multipart.FileHeader) ([]byte, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	partHeader := make(textproto.MIMEHeader)
	partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, header.Filename))
	partContentType := header.Header.Get("Content-Type")
	if partContentType == "" {
		partContentType = "application/octet-stream"
	}
	partHeader.Set("Content-Type", partContentType)

	part, err := writer.CreatePart(partHeader)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", fmt.Errorf("failed to copy file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}

func purgeCatalog(ctx *middlewares.AppContext) {
	ctx.Cache.Purge(ctx.Context)
	ctx.Logger.Debug("catalog cache purged", "method", ctx.Request.Method, "path", ctx.Request.URL.Path)
}
