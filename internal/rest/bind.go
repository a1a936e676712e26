package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// BindAndValidate decodes the JSON body into dst and runs struct validation.
// On failure it writes the 400 response itself and returns false.
func BindAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "malformed request body", err.Error())
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			respondError(w, http.StatusBadRequest, "validation failed", verrs[0].Error())
			return false
		}
		respondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return false
	}
	return true
}
