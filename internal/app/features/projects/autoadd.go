package projects

import (
	"net/http"
	"strings"

	"github.com/dalemusser/folio/internal/app/system/apiresp"
	"github.com/dalemusser/folio/internal/app/system/apperror"
	"github.com/dalemusser/folio/internal/app/system/classifier"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type autoAddBody struct {
	Username    string `json:"username"`
	NumProjects int    `json:"numProjects"`
}

func (b autoAddBody) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Username, validation.Required.Error("is required")),
		validation.Field(&b.NumProjects, validation.Min(0), validation.Max(classifier.MaxCount)),
	)
}

// AutoAdd handles POST /api/projects/auto-add. It classifies the user's
// repositories and creates one project per repository. The response is the
// run result; a failed repository fetch is reported in its error field.
func (h *Handler) AutoAdd(w http.ResponseWriter, r *http.Request) {
	if h.Classifier == nil {
		apiresp.Error(w, h.Log, apperror.NotFound("Auto-add"))
		return
	}

	var body autoAddBody
	if err := apiresp.Decode(r, &body); err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	body.Username = strings.TrimSpace(body.Username)
	if err := body.Validate(); err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Batch(), h.Log, "classify repositories")
	defer cancel()

	res := h.Classifier.Run(ctx, body.Username, classifier.ClampCount(body.NumProjects))
	apiresp.JSON(w, http.StatusOK, res)
}
