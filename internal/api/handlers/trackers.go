package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"compass-utils/internal/store"
	"compass-utils/pkg/models"
	"compass-utils/pkg/utils"
)

// Tracker handlers are plain CRUD over the in-memory tracker store. Entries
// are scoped per owner and carry server-assigned IDs.

// ListApplicationsHandler returns all application tracker entries
func ListApplicationsHandler(trackers *store.TrackerStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, trackers.ListApplications(ownerID(c)))
	}
}

// AddApplicationHandler appends an application tracker entry
func AddApplicationHandler(trackers *store.TrackerStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()

		var app models.Application
		if err := c.Bind(&app); err != nil {
			return trackerBadRequest(c, requestID, "Invalid request format")
		}
		if app.Status == "" {
			app.Status = models.ApplicationStatusApplied
		}
		if app.AppliedDate.IsZero() {
			app.AppliedDate = time.Now()
		}
		if err := validate.Struct(&app); err != nil {
			return trackerBadRequest(c, requestID, err.Error())
		}

		return c.JSON(http.StatusCreated, trackers.AddApplication(ownerID(c), app))
	}
}

// UpdateApplicationStatusHandler moves an application between statuses
func UpdateApplicationStatusHandler(trackers *store.TrackerStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()

		var body struct {
			Status string `json:"status" validate:"required,oneof=Applied Interview Rejected Offer"`
		}
		if err := c.Bind(&body); err != nil {
			return trackerBadRequest(c, requestID, "Invalid request format")
		}
		if err := validate.Struct(&body); err != nil {
			return trackerBadRequest(c, requestID, err.Error())
		}

		app, err := trackers.UpdateApplicationStatus(ownerID(c), c.Param("id"), body.Status)
		if err != nil {
			return trackerNotFound(c, requestID)
		}
		return c.JSON(http.StatusOK, app)
	}
}

// DeleteApplicationHandler removes an application tracker entry
func DeleteApplicationHandler(trackers *store.TrackerStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()

		if err := trackers.DeleteApplication(ownerID(c), c.Param("id")); err != nil {
			return trackerNotFound(c, requestID)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// ListMentorsHandler returns all mentor tracker entries
func ListMentorsHandler(trackers *store.TrackerStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, trackers.ListMentors(ownerID(c)))
	}
}

// AddMentorHandler appends a mentor tracker entry
func AddMentorHandler(trackers *store.TrackerStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()

		var mentor models.Mentor
		if err := c.Bind(&mentor); err != nil {
			return trackerBadRequest(c, requestID, "Invalid request format")
		}
		if err := validate.Struct(&mentor); err != nil {
			return trackerBadRequest(c, requestID, err.Error())
		}

		return c.JSON(http.StatusCreated, trackers.AddMentor(ownerID(c), mentor))
	}
}

// ConnectMentorHandler flips the connected flag on a mentor entry
func ConnectMentorHandler(trackers *store.TrackerStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()

		var body struct {
			Connected bool `json:"connected"`
		}
		if err := c.Bind(&body); err != nil {
			return trackerBadRequest(c, requestID, "Invalid request format")
		}

		mentor, err := trackers.SetMentorConnected(ownerID(c), c.Param("id"), body.Connected)
		if err != nil {
			return trackerNotFound(c, requestID)
		}
		return c.JSON(http.StatusOK, mentor)
	}
}

// ListLearningItemsHandler returns all learning path entries
func ListLearningItemsHandler(trackers *store.TrackerStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, trackers.ListLearningItems(ownerID(c)))
	}
}

// AddLearningItemHandler appends a learning path entry
func AddLearningItemHandler(trackers *store.TrackerStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()

		var item models.LearningItem
		if err := c.Bind(&item); err != nil {
			return trackerBadRequest(c, requestID, "Invalid request format")
		}
		if err := validate.Struct(&item); err != nil {
			return trackerBadRequest(c, requestID, err.Error())
		}

		return c.JSON(http.StatusCreated, trackers.AddLearningItem(ownerID(c), item))
	}
}

// ToggleLearningItemHandler marks a learning path entry done or not done
func ToggleLearningItemHandler(trackers *store.TrackerStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()

		var body struct {
			Done bool `json:"done"`
		}
		if err := c.Bind(&body); err != nil {
			return trackerBadRequest(c, requestID, "Invalid request format")
		}

		item, err := trackers.SetLearningItemDone(ownerID(c), c.Param("id"), body.Done)
		if err != nil {
			return trackerNotFound(c, requestID)
		}
		return c.JSON(http.StatusOK, item)
	}
}

func trackerBadRequest(c echo.Context, requestID, message string) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:     "invalid_request",
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}

func trackerNotFound(c echo.Context, requestID string) error {
	return c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:     "entry_not_found",
		Message:   "Tracker entry not found",
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}
