package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultCategories are returned for a namespace whose store is still empty,
// so the admin panel always has suggestions to offer. Once a single category
// is stored for the namespace, only stored names are returned.
var defaultCategories = map[string][]string{
	"projects": {
		"Data Engineering",
		"Machine Learning",
		"AI Ethics",
		"Data Analytics",
		"Cloud Architecture",
		"ETL/ELT",
		"Data Pipeline",
		"Data Warehousing",
		"Big Data",
		"Data Science",
		"Business Intelligence",
		"Data Governance",
		"Data Quality",
		"Streaming Data",
		"Data Modeling",
	},
	"blogs": {
		"Data Engineering",
		"AI Ethics",
		"Machine Learning",
		"Data Analytics",
		"Cloud Computing",
		"Best Practices",
		"Tutorials",
		"Case Studies",
		"Industry Insights",
	},
}

type categoryHandler struct {
	responder    Responder
	logger       zerolog.Logger
	categoryRepo *database.CategoryRepo
}

func newCategoryHandler(categoryRepo *database.CategoryRepo) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		categoryRepo: categoryRepo,
	}
}

// getCategories lists category names for the ?type= namespace, alphabetically,
// substituting the built-in defaults when the store has none for it
func (h categoryHandler) getCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryType := r.URL.Query().Get("type")
		if categoryType == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("type"))
			return
		}

		names, err := h.categoryRepo.FindByType(categoryType)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "categories", err))
			return
		}

		if len(names) == 0 {
			if defaults, ok := defaultCategories[categoryType]; ok {
				h.responder.WriteJSON(w, defaults)
				return
			}
			names = []string{}
		}

		h.responder.WriteJSON(w, names)
	}
}

// addCategory performs an idempotent insert and responds with the full
// re-read list for the namespace, not merely the new item. A duplicate
// (type, name) pair is a silent no-op.
func (h categoryHandler) addCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Type     string `json:"type"`
			Category string `json:"category"`
		}
		if err := decodeBody(r, &body); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if body.Type == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("type"))
			return
		}
		if body.Category == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("category"))
			return
		}

		category := models.Category{Type: body.Type, Name: body.Category}
		if err := h.categoryRepo.Add(&category); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "category", err))
			return
		}

		names, err := h.categoryRepo.FindByType(body.Type)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "categories", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success":    true,
			"categories": names,
		})
	}
}
