package controller

import (
	"strconv"

	"smartexam_backend/internal/service"
	"smartexam_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// @Summary List questions
// @Description Most recently created questions, newest first, capped at 100
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Page size (max 100)"
// @Success 200 {array} model.Question
// @Router /api/questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	limit, _ := strconv.ParseInt(ctx.DefaultQuery("limit", "100"), 10, 64)

	questions, err := c.QuestionService.ListRecent(ctx.Request.Context(), limit)
	if err != nil {
		util.InternalServerError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// @Summary Create a question
// @Description Validates CAPS invariants, stamps version and createdAt, persists
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param question body service.CreateQuestionRequest true "Candidate question"
// @Success 201 {object} model.Question
// @Failure 400 {object} util.ErrorResponse
// @Router /api/questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var req service.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuestionService.Create(ctx.Request.Context(), &req)
	if err != nil {
		if util.IsValidationError(err) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.InternalServerError(ctx, err)
		return
	}

	util.Created(ctx, question)
}
