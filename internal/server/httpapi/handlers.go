package httpapi

import (
	"encoding/json"
	"fmt"
	"image"
	"net/http"

	"github.com/dmitrijs2005/ecorewards/internal/logging"
	"github.com/dmitrijs2005/ecorewards/internal/server/model"
	"github.com/dmitrijs2005/ecorewards/internal/waste"
)

// errorClass is reported when the model fails on a decodable image.
const errorClass = "Error in classification"

// maxBodyBytes bounds the request body; base64 inflates images by a third.
const maxBodyBytes = 16 << 20

type Handler struct {
	model  model.Classifier
	logger logging.Logger
}

func NewHandler(m model.Classifier, l logging.Logger) *Handler {
	return &Handler{model: m, logger: l.With("module", "http_api")}
}

func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Field presence decides "no image"; a present field that is null or
	// not a string is an invalid image.
	var body map[string]json.RawMessage
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, msgNoImage)
		return
	}
	field, ok := body["image"]
	if !ok {
		writeError(w, http.StatusBadRequest, msgNoImage)
		return
	}

	var encoded *string
	if err := json.Unmarshal(field, &encoded); err != nil || encoded == nil {
		writeError(w, http.StatusBadRequest, msgInvalidImage)
		return
	}

	img, err := model.DecodeBase64Image(*encoded)
	if err != nil {
		h.logger.Debug(ctx, "image decode failed", "error", err)
		writeError(w, http.StatusBadRequest, msgInvalidImage)
		return
	}

	c, err := h.classify(r, img)
	if err != nil {
		h.logger.Error(ctx, "classification failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	h.logger.Info(ctx, "image classified",
		"class", c.PredictedClass, "confidence", c.Confidence, "objects", c.ObjectCount)
	writeJSON(w, http.StatusOK, waste.ClassifyResponse{Success: true, Classification: &c})
}

func (h *Handler) classify(r *http.Request, img image.Image) (c waste.Classification, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("classify panic: %v", p)
		}
	}()

	class, confidence, err := h.model.Predict(r.Context(), img)
	if err != nil {
		if ctxErr := r.Context().Err(); ctxErr != nil {
			return waste.Classification{}, ctxErr
		}
		h.logger.Warn(r.Context(), "model prediction failed", "error", err)
		class, confidence = errorClass, 0
	}

	return waste.FromPrediction(class, confidence, model.CountObjects(img)), nil
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, waste.HealthResponse{
		Status:           "healthy",
		ModelLoaded:      h.model.Loaded(),
		AvailableClasses: h.model.Classes(),
	})
}

func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, waste.InfoResponse{
		ModelName:   model.Name,
		Classes:     h.model.Classes(),
		InputShape:  model.InputShape,
		Description: model.Description,
	})
}
