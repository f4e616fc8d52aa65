package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterGoalRoutes registers the routes for savings goals with
// the RouterGroup that is passed.
func RegisterGoalRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsGoalList)
		r.GET("", GetGoals)
		r.POST("", CreateGoal)
	}

	// Goal with ID
	{
		r.OPTIONS("/:id", OptionsGoalDetail)
		r.GET("/:id", GetGoal)
		r.PATCH("/:id", UpdateGoal)
		r.DELETE("/:id", DeleteGoal)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Router			/v1/goals [options]
func OptionsGoalList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Param			id	path	uint64	true	"ID of the goal"
// @Router			/v1/goals/{id} [options]
func OptionsGoalDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create goal
// @Description	Creates a new savings goal
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		201		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	GoalResponse
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/goals [post]
func CreateGoal(c *gin.Context) {
	user := currentUser(c)

	var editable GoalEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	goal, err := models.CreateSavingsGoal(editable.GoalName, editable.TargetAmount, editable.TargetDate, editable.StartDate, user)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	data, err := newGoal(goal)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, GoalResponse{Data: &data})
}

// @Summary		Get goals
// @Description	Returns all savings goals of the user with computed progress
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalListResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	GoalListResponse
// @Router			/v1/goals [get]
func GetGoals(c *gin.Context) {
	user := currentUser(c)

	goals, err := models.SavingsGoalsForUser(user.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalListResponse{Error: &s})
		return
	}

	data := make([]Goal, 0, len(goals))
	for _, goal := range goals {
		apiResource, err := newGoal(goal)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), GoalListResponse{Error: &s})
			return
		}
		data = append(data, apiResource)
	}

	c.JSON(http.StatusOK, GoalListResponse{Data: data})
}

// @Summary		Get goal
// @Description	Returns a specific savings goal with computed progress
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		400	{object}	GoalResponse
// @Failure		401	{object}	httpError
// @Failure		403	{object}	GoalResponse
// @Failure		404	{object}	GoalResponse
// @Failure		500	{object}	GoalResponse
// @Param			id	path		uint64	true	"ID of the goal"
// @Router			/v1/goals/{id} [get]
func GetGoal(c *gin.Context) {
	user := currentUser(c)

	id, err := httputil.ParseID(c, "id")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	goal, err := models.GetSavingsGoal(id, user)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	data, err := newGoal(goal)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, GoalResponse{Data: &data})
}

// @Summary		Update goal
// @Description	Update an existing goal. Only values to be updated need to be specified.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		401		{object}	httpError
// @Failure		403		{object}	GoalResponse
// @Failure		404		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			id		path		uint64				true	"ID of the goal"
// @Param			goal	body		GoalUpdateRequest	true	"Goal"
// @Router			/v1/goals/{id} [patch]
func UpdateGoal(c *gin.Context) {
	user := currentUser(c)

	id, err := httputil.ParseID(c, "id")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	var request GoalUpdateRequest
	err = httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	goal, err := models.UpdateSavingsGoal(id, models.SavingsGoalUpdate{
		TargetAmount: request.TargetAmount,
		TargetDate:   request.TargetDate,
	}, user)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	data, err := newGoal(goal)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, GoalResponse{Data: &data})
}

// @Summary		Delete goal
// @Description	Deletes a savings goal
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint64	true	"ID of the goal"
// @Router			/v1/goals/{id} [delete]
func DeleteGoal(c *gin.Context) {
	user := currentUser(c)

	id, err := httputil.ParseID(c, "id")
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DeleteSavingsGoal(id, user)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
