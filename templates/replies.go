package templates

import (
	"context"

	"github.com/a-h/templ"
)

type ReplyView struct {
	ID       string
	Question string
	Answer   string
	Category string
}

type ReplyFormData struct {
	Question string
	Answer   string
	Category string
	Errors   map[string]string
}

type RepliesPageData struct {
	Replies []ReplyView
	Form    ReplyFormData
}

func RepliesPage(data RepliesPageData) templ.Component {
	return Page("Replies", TabReplies, RepliesContent(data))
}

func RepliesContent(data RepliesPageData) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		f := data.Form
		h.raw(`<h1>Quick replies</h1>`)
		h.raw(`<form class="card" hx-post="/replies" hx-target="#content">`)
		h.input("Question (optional)", "question", f.Question, "text", f.Errors["question"], "")
		h.textarea("Answer", "answer", f.Answer, f.Errors["answer"])
		h.input("Category", "category", f.Category, "text", f.Errors["category"], `placeholder="General"`)
		h.raw(`<div class="actions"><button type="submit">Save reply</button></div></form>`)

		h.raw(`<section id="replies">`)
		if len(data.Replies) == 0 {
			h.raw(`<p class="muted">No replies yet.</p>`)
		}
		for _, r := range data.Replies {
			h.raw(`<article class="card"><span class="badge">`)
			h.text(r.Category)
			h.raw(`</span>`)
			if r.Question != "" {
				h.raw(`<p><strong>`)
				h.text(r.Question)
				h.raw(`</strong></p>`)
			}
			h.raw(`<p>`)
			h.text(r.Answer)
			h.raw(`</p><div class="actions"><button class="secondary" data-share hx-post="/replies/`)
			h.text(r.ID)
			h.raw(`/share" hx-swap="none">Share</button></div></article>`)
		}
		h.raw(`</section>`)
	})
}
