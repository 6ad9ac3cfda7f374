// Copyright 2023 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/UNO-SOFT/sheetview"
	"github.com/UNO-SOFT/sheetview/ingest"
	"github.com/UNO-SOFT/sheetview/table"
)

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	d := IndexData{Notice: s.store.TakeNotice(id)}
	if e, ok := s.store.Get(id); ok {
		v := table.Apply(e.Dataset, table.ParseState(r.URL.Query()))
		d.FileName, d.View = e.FileName, &v
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	WriteIndex(w, &d)
}

// upload replaces the session's dataset with the uploaded file.
// A file that cannot be used leaves a notice and the previous dataset.
func (s *Server) upload(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	ticket := s.store.Begin(id)
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUpload)

	ds, name, err := s.readUpload(r)
	s.settle(r.Context(), id, ticket, name, ds, err)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// settle ends the upload ticket: the dataset replaces the session's one
// unless reading failed or the request is gone by now.
func (s *Server) settle(ctx context.Context, id string, ticket uint64, name string, ds sheetview.Dataset, err error) {
	if err == nil {
		err = ctx.Err()
	}
	logger := s.logger.With("session", id, "file", name)
	if err != nil {
		logger.Warn("upload rejected", "error", err)
		if !s.store.Reject(id, ticket, s.notice(err, name)) {
			logger.Debug("stale upload dropped")
		}
		return
	}
	if s.store.Commit(id, ticket, Entry{FileName: name, Dataset: ds, Uploaded: time.Now()}) {
		logger.Info("dataset loaded", "columns", len(ds.Columns), "rows", len(ds.Rows))
	} else {
		logger.Debug("stale upload dropped")
	}
}

func (s *Server) readUpload(r *http.Request) (sheetview.Dataset, string, error) {
	f, hdr, err := r.FormFile("file")
	if err != nil {
		return sheetview.Dataset{}, "", err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return sheetview.Dataset{}, hdr.Filename, err
	}
	ds, err := ingest.Normalize(r.Context(), data, s.normalizer(r))
	return ds, hdr.Filename, err
}

func (s *Server) notice(err error, name string) string {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, sheetview.ErrParse):
		return fmt.Sprintf("%q is not a readable .xls or .xlsx spreadsheet.", name)
	case errors.Is(err, sheetview.ErrEmptySheet):
		return fmt.Sprintf("The first sheet of %q is empty.", name)
	case errors.As(err, &tooLarge):
		return fmt.Sprintf("The file is larger than the upload limit of %d bytes.", tooLarge.Limit)
	case errors.Is(err, http.ErrMissingFile):
		return "Choose a file to upload."
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "The upload was interrupted."
	default:
		return "The file could not be read."
	}
}

func (s *Server) dataset(w http.ResponseWriter, r *http.Request) {
	e, ok := s.store.Get(s.sessionID(w, r))
	if !ok {
		http.Error(w, "no spreadsheet uploaded", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(struct {
		FileName string `json:"fileName"`
		sheetview.Dataset
	}{FileName: e.FileName, Dataset: e.Dataset}); err != nil {
		s.logger.Error("encode dataset", "error", err)
	}
}
