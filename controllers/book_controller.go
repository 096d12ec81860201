package controllers

import (
	"net/http"
	"strconv"

	"gin-bookreview/constants"
	"gin-bookreview/dto"
	"gin-bookreview/serializers"
	"gin-bookreview/services"

	"github.com/gin-gonic/gin"
)

type IBookController interface {
	FindAll(ctx *gin.Context)
	FindById(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type BookController struct {
	service services.IBookService
}

func NewBookController(service services.IBookService) IBookController {
	return &BookController{service: service}
}

func (c *BookController) FindAll(ctx *gin.Context) {
	books, err := c.service.FindAll()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, serializers.SerializeBooks(*books))
}

func (c *BookController) FindById(ctx *gin.Context) {
	bookID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrBookNotFound})
		return
	}

	book, err := c.service.FindById(uint(bookID))
	if err != nil {
		if err.Error() == constants.ErrBookNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrBookNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, serializers.SerializeBook(book))
}

func (c *BookController) Create(ctx *gin.Context) {
	var input dto.CreateBookInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": dto.ValidationMessages(err)})
		return
	}

	newBook, err := c.service.Create(input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusCreated, serializers.SerializeBook(newBook))
}

func (c *BookController) Update(ctx *gin.Context) {
	bookID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrBookNotFound})
		return
	}

	var input dto.UpdateBookInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": dto.ValidationMessages(err)})
		return
	}

	updatedBook, err := c.service.Update(uint(bookID), input)
	if err != nil {
		if err.Error() == constants.ErrBookNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrBookNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, serializers.SerializeBook(updatedBook))
}

func (c *BookController) Delete(ctx *gin.Context) {
	bookID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrBookNotFound})
		return
	}

	if err := c.service.Delete(uint(bookID)); err != nil {
		if err.Error() == constants.ErrBookNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrBookNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.Status(http.StatusNoContent)
}
