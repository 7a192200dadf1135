package responsex

import (
	"encoding/json"
	"net/http"

	"deepcheck_api/models/models"
)

func RespondWithJSON(w http.ResponseWriter, http_status_code int, response models.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http_status_code)
	_ = json.NewEncoder(w).Encode(response)
}

func OK(w http.ResponseWriter, data interface{}) {
	RespondWithJSON(w, http.StatusOK, models.Response{
		Code: http.StatusOK,
		Msg:  "Success",
		Data: data,
	})
}

func Created(w http.ResponseWriter, data interface{}) {
	RespondWithJSON(w, http.StatusCreated, models.Response{
		Code: http.StatusCreated,
		Msg:  "Success",
		Data: data,
	})
}

func Error(w http.ResponseWriter, status int, msg string) {
	RespondWithJSON(w, status, models.Response{
		Code: status,
		Msg:  msg,
		Data: map[string]interface{}{},
	})
}
