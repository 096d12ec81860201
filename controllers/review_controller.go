package controllers

import (
	"net/http"
	"strconv"

	"gin-bookreview/constants"
	"gin-bookreview/dto"
	"gin-bookreview/models"
	"gin-bookreview/serializers"
	"gin-bookreview/services"

	"github.com/gin-gonic/gin"
)

type IReviewController interface {
	FindAll(ctx *gin.Context)
	FindById(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type ReviewController struct {
	service services.IReviewService
}

func NewReviewController(service services.IReviewService) IReviewController {
	return &ReviewController{service: service}
}

func (c *ReviewController) FindAll(ctx *gin.Context) {
	reviews, err := c.service.FindAll()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, serializers.SerializeReviews(*reviews))
}

func (c *ReviewController) FindById(ctx *gin.Context) {
	reviewID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrReviewNotFound})
		return
	}

	review, err := c.service.FindById(uint(reviewID))
	if err != nil {
		if err.Error() == constants.ErrReviewNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrReviewNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, serializers.SerializeReview(review))
}

// Create ignores any client-supplied author; the review is always attributed
// to the authenticated user.
func (c *ReviewController) Create(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	userID := user.(*models.User).ID

	var input dto.CreateReviewInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": dto.ValidationMessages(err)})
		return
	}

	newReview, err := c.service.Create(input, userID)
	if err != nil {
		if err.Error() == constants.ErrBookNotFound {
			ctx.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"book": constants.ErrBookNotFound}})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusCreated, serializers.SerializeReview(newReview))
}

func (c *ReviewController) Update(ctx *gin.Context) {
	reviewID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrReviewNotFound})
		return
	}

	var input dto.UpdateReviewInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": dto.ValidationMessages(err)})
		return
	}

	updatedReview, err := c.service.Update(uint(reviewID), input)
	if err != nil {
		switch err.Error() {
		case constants.ErrReviewNotFound:
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrReviewNotFound})
		case constants.ErrBookNotFound:
			ctx.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"book": constants.ErrBookNotFound}})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}

	ctx.JSON(http.StatusOK, serializers.SerializeReview(updatedReview))
}

func (c *ReviewController) Delete(ctx *gin.Context) {
	reviewID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrReviewNotFound})
		return
	}

	if err := c.service.Delete(uint(reviewID)); err != nil {
		if err.Error() == constants.ErrReviewNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrReviewNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.Status(http.StatusNoContent)
}
