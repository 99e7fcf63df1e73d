package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"craftquote/services"
	"craftquote/sharing"
	"craftquote/templates"
)

func (d *Deps) repliesPage(form templates.ReplyFormData) templates.RepliesPageData {
	replies := d.Replies.All()
	views := make([]templates.ReplyView, 0, len(replies))
	for _, r := range replies {
		views = append(views, templates.ReplyView{
			ID:       r.ID,
			Question: r.Question,
			Answer:   r.Answer,
			Category: r.Category,
		})
	}
	return templates.RepliesPageData{Replies: views, Form: form}
}

func HandleReplies(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := d.repliesPage(templates.ReplyFormData{})
		return render(e, templates.RepliesPage(data), templates.RepliesContent(data))
	}
}

// HandleCreateReply prepends a reply. The category falls back to the
// configured default.
func HandleCreateReply(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		form := services.ReplyForm{
			Question: e.Request.FormValue("question"),
			Answer:   e.Request.FormValue("answer"),
			Category: e.Request.FormValue("category"),
		}

		reply, err := services.NewReply(form, d.Config.ReplyCategory, d.Now())
		if err != nil {
			var ve *services.ValidationError
			if !errors.As(err, &ve) {
				log.Printf("replies: failed to build reply: %v", err)
				return ErrorToast(e, http.StatusInternalServerError, "Could not save reply")
			}
			SetToast(e, sharing.LevelWarning, "Write an answer first")
			data := d.repliesPage(templates.ReplyFormData{
				Question: form.Question,
				Answer:   form.Answer,
				Category: form.Category,
				Errors:   ve.Fields,
			})
			return templates.RepliesContent(data).Render(e.Request.Context(), e.Response)
		}

		if err := d.Replies.Prepend(e.Request.Context(), reply); err != nil {
			log.Printf("replies: failed to save reply: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not save reply")
		}
		SetToast(e, sharing.LevelSuccess, "Reply saved")
		data := d.repliesPage(templates.ReplyFormData{})
		return render(e, templates.RepliesPage(data), templates.RepliesContent(data))
	}
}

// HandleShareReply returns the reply answer unchanged for the share sheet.
func HandleShareReply(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		for _, r := range d.Replies.All() {
			if r.ID != id {
				continue
			}
			if !sharing.ShareText(e.Request.Context(), responseSink{e}, toastNotifier{e}, r.Answer) {
				e.Response.Header().Set("HX-Reswap", "none")
			}
			return nil
		}
		return ErrorToast(e, http.StatusNotFound, "Reply not found")
	}
}
