package server

import (
	"encoding/json"
	"github.com/bokysan/basexx/internal/util/enc"
	"github.com/go-chi/chi"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"io/ioutil"
	"net/http"
	"strings"
)

// EncodingInfo describes an encoder in the response of `GET /encodings`
type EncodingInfo struct {
	Code             string `json:"code"`
	Name             string `json:"name"`
	BlocksizeRaw     int    `json:"blocksizeRaw"`
	BlocksizeEncoded int    `json:"blocksizeEncoded"`
	Alphabet         string `json:"alphabet"`
}

// encoderFromRequest resolves the {encoding} URL parameter. It writes a 404 response if there's no such
// encoder.
func encoderFromRequest(w http.ResponseWriter, r *http.Request) enc.Encoder {
	name := chi.URLParam(r, "encoding")
	e, err := enc.FromName(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return nil
	}
	return e
}

func (hs *HttpServer) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, hs.MaxBodySize))
	if err != nil {
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return nil, false
	}
	return body, true
}

func (hs *HttpServer) encodeHandler(w http.ResponseWriter, r *http.Request) {
	e := encoderFromRequest(w, r)
	if e == nil {
		return
	}
	body, ok := hs.readBody(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := io.WriteString(w, e.Encode(body)); err != nil {
		log.WithError(err).Debugf("Could not write the response")
	}
}

func (hs *HttpServer) decodeHandler(w http.ResponseWriter, r *http.Request) {
	e := encoderFromRequest(w, r)
	if e == nil {
		return
	}
	body, ok := hs.readBody(w, r)
	if !ok {
		return
	}

	data, err := e.Decode(strings.TrimSpace(string(body)))
	if err != nil {
		log.WithError(err).Debugf("Invalid %v input", e.Name())
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := w.Write(data); err != nil {
		log.WithError(err).Debugf("Could not write the response")
	}
}

func (hs *HttpServer) encodingsHandler(w http.ResponseWriter, r *http.Request) {
	encoders := enc.All()
	infos := make([]EncodingInfo, 0, len(encoders))
	for _, e := range encoders {
		infos = append(infos, EncodingInfo{
			Code:             string(e.Code()),
			Name:             e.Name(),
			BlocksizeRaw:     e.BlocksizeRaw(),
			BlocksizeEncoded: e.BlocksizeEncoded(),
			Alphabet:         e.Alphabet().String(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(infos); err != nil {
		log.WithError(errors.WithStack(err)).Debugf("Could not write the response")
	}
}
