package controllers

import (
	"errors"
	"time"

	"proprospect-backend/activity"
	"proprospect-backend/middlewares"
	"proprospect-backend/models"
	"proprospect-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// noteView decorates a note with the relative age label the feed displays.
type noteView struct {
	models.Note
	TimeAgo string `json:"time_ago"`
}

func feedReply(c *fiber.Ctx, feed *activity.Feed) error {
	now := time.Now()
	visible := feed.Visible()
	views := make([]noteView, len(visible))
	for i, n := range visible {
		views[i] = noteView{Note: n, TimeAgo: utils.FormatTimeAgo(n.CreatedAt, now)}
	}
	return c.JSON(fiber.Map{
		"notes":  views,
		"filter": feed.ActiveFilter(),
		"counts": feed.Counts(),
		"total":  feed.Len(),
	})
}

func feedFor(c *fiber.Ctx) (*activity.Feed, error) {
	return Feeds.Feed(c.Params("id"))
}

// noteReply maps feed results onto HTTP: rejected actions are no-op
// responses, a missing note id is a 404, real faults bubble to the error
// handler.
func noteReply(c *fiber.Ctx, feed *activity.Feed, err error) error {
	switch {
	case err == nil:
		return feedReply(c, feed)
	case errors.Is(err, activity.ErrNoteNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Note not found"})
	case errors.Is(err, activity.ErrEmptyContent), errors.Is(err, activity.ErrMissingFollowUp):
		return c.JSON(fiber.Map{"message": "ignored", "reason": err.Error()})
	case errors.Is(err, activity.ErrUnknownNoteType):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	default:
		return err
	}
}

func GetNotes(c *fiber.Ctx) error {
	feed, err := feedFor(c)
	if err != nil {
		return err
	}
	return feedReply(c, feed)
}

type createNoteRequest struct {
	Content string `json:"content"`
	Type    string `json:"type" validate:"omitempty,oneof=Note FollowUp Call SMS Email AiSent Lead Offer"`
}

func CreateNote(c *fiber.Ctx) error {
	feed, err := feedFor(c)
	if err != nil {
		return err
	}
	var req createNoteRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}
	_, err = feed.AddNote(actingUser(c), req.Content, models.NoteType(req.Type), "")
	return noteReply(c, feed, err)
}

type updateNoteRequest struct {
	Content string `json:"content"`
}

func UpdateNote(c *fiber.Ctx) error {
	feed, err := feedFor(c)
	if err != nil {
		return err
	}
	var req updateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	_, err = feed.UpdateNote(c.Params("noteId"), req.Content)
	return noteReply(c, feed, err)
}

func DeleteNote(c *fiber.Ctx) error {
	feed, err := feedFor(c)
	if err != nil {
		return err
	}
	return noteReply(c, feed, feed.DeleteNote(c.Params("noteId")))
}

type setFilterRequest struct {
	Filter string `json:"filter" validate:"required"`
}

func SetNoteFilter(c *fiber.Ctx) error {
	feed, err := feedFor(c)
	if err != nil {
		return err
	}
	var req setFilterRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}
	return noteReply(c, feed, feed.SetFilter(req.Filter))
}

type followUpRequest struct {
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time string `json:"time" validate:"omitempty,datetime=15:04"`
	Note string `json:"note"`
}

func ScheduleFollowUp(c *fiber.Ctx) error {
	feed, err := feedFor(c)
	if err != nil {
		return err
	}
	var req followUpRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}
	_, err = feed.ScheduleFollowUp(actingUser(c), req.Date, req.Time, req.Note)
	return noteReply(c, feed, err)
}
