package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type blogHandler struct {
	responder Responder
	logger    zerolog.Logger
	blogRepo  *database.BlogRepo
}

func newBlogHandler(blogRepo *database.BlogRepo) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder: NewResponder(logger),
		logger:    logger,
		blogRepo:  blogRepo,
	}
}

// applyBlogDefaults fills the engagement fields a caller may omit: comments
// default to enabled with no entries and no reactions. Applied on create and
// update so the stored row never holds nulls for these columns.
func applyBlogDefaults(blog *models.Blog) {
	if blog.AllowComments == nil {
		allow := true
		blog.AllowComments = &allow
	}
	if blog.Comments == nil {
		blog.Comments = datatypes.NewJSONSlice([]models.BlogComment{})
	}
	if blog.EmojiReactions.Data() == nil {
		blog.EmojiReactions = datatypes.NewJSONType(map[string]int{})
	}
	if blog.Technologies == nil {
		blog.Technologies = models.StringList{}
	}
}

// getAllBlogs returns every blog ordered by id ascending
func (h blogHandler) getAllBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogs, err := h.blogRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blogs", err))
			return
		}

		if blogs == nil {
			blogs = []*models.Blog{}
		}

		h.responder.WriteJSON(w, blogs)
	}
}

// createBlog validates and persists a new blog post
func (h blogHandler) createBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var blog models.Blog
		if err := decodeBody(r, &blog); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if blog.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}

		blog.ID = 0
		applyBlogDefaults(&blog)

		if err := h.blogRepo.Add(&blog); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "blog", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"blog":    blog,
		})
	}
}

// updateBlog fully replaces an existing blog post
func (h blogHandler) updateBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var blog models.Blog
		if err := decodeBody(r, &blog); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if blog.ID == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("id"))
			return
		}

		existing, err := h.blogRepo.FindByID(blog.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Blog not found"))
			return
		}

		applyBlogDefaults(&blog)

		if err := h.blogRepo.Update(&blog); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "blog", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"blog":    blog,
		})
	}
}

// deleteBlog removes a blog by the ?id=N query parameter
func (h blogHandler) deleteBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.blogRepo.Delete(id); err != nil {
			if errs.IsNotFound(err) {
				h.responder.WriteError(w, errs.NewNotFoundError("Blog not found"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("delete", "blog", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"success": true})
	}
}
