package handler

import (
	"github.com/gin-gonic/gin"

	appauthor "github.com/xiebiao/biblioteca/internal/application/author"
	appbook "github.com/xiebiao/biblioteca/internal/application/book"
	"github.com/xiebiao/biblioteca/internal/interface/http/dto"
	apperrors "github.com/xiebiao/biblioteca/pkg/errors"
	"github.com/xiebiao/biblioteca/pkg/response"
)

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	createUseCase *appauthor.CreateAuthorUseCase
	getUseCase    *appauthor.GetAuthorUseCase
	listUseCase   *appauthor.ListAuthorsUseCase
	updateUseCase *appauthor.UpdateAuthorUseCase
	deleteUseCase *appauthor.DeleteAuthorUseCase
	booksUseCase  *appbook.AuthorBooksUseCase
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(
	createUseCase *appauthor.CreateAuthorUseCase,
	getUseCase *appauthor.GetAuthorUseCase,
	listUseCase *appauthor.ListAuthorsUseCase,
	updateUseCase *appauthor.UpdateAuthorUseCase,
	deleteUseCase *appauthor.DeleteAuthorUseCase,
	booksUseCase *appbook.AuthorBooksUseCase,
) *AuthorHandler {
	return &AuthorHandler{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		booksUseCase:  booksUseCase,
	}
}

// List 作者列表
// @Summary      作者列表
// @Description  分页查询作者,支持国籍过滤、搜索与排序
// @Tags         作者
// @Produce      json
// @Param        page query int false "页码(从1开始)"
// @Param        nacionalidad query string false "国籍子串过滤"
// @Param        search query string false "搜索关键词(姓名、国籍)"
// @Param        ordering query string false "排序字段(nombre、nacionalidad,前缀-为降序)"
// @Success      200 {object} response.PageData
// @Router       /api/v1/authors [get]
func (h *AuthorHandler) List(c *gin.Context) {
	page, err := queryPage(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), appauthor.ListAuthorsRequest{
		Page:         page,
		Search:       c.Query("search"),
		Nacionalidad: c.Query("nacionalidad"),
		Ordering:     c.Query("ordering"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, result.Items, result.Total, result.Page)
}

// Get 作者详情
// @Summary      作者详情
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} appauthor.AuthorDTO
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [get]
func (h *AuthorHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Create 创建作者
// @Summary      创建作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateAuthorRequest true "作者信息"
// @Success      201 {object} appauthor.AuthorDTO
// @Failure      400 {object} response.Response "字段校验失败"
// @Router       /api/v1/authors [post]
func (h *AuthorHandler) Create(c *gin.Context) {
	var req dto.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), appauthor.CreateAuthorRequest{
		Nombre:       req.Nombre,
		Nacionalidad: req.Nacionalidad,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// Update 全量更新作者
// @Summary      更新作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Param        id path int true "作者ID"
// @Param        request body dto.UpdateAuthorRequest true "作者信息"
// @Success      200 {object} appauthor.AuthorDTO
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [put]
func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), appauthor.UpdateAuthorRequest{
		ID:           id,
		Nombre:       &req.Nombre,
		Nacionalidad: &req.Nacionalidad,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Patch 部分更新作者
// @Summary      部分更新作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Param        id path int true "作者ID"
// @Param        request body dto.PatchAuthorRequest true "要修改的字段"
// @Success      200 {object} appauthor.AuthorDTO
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [patch]
func (h *AuthorHandler) Patch(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.PatchAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), appauthor.UpdateAuthorRequest{
		ID:           id,
		Nombre:       req.Nombre,
		Nacionalidad: req.Nacionalidad,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Delete 删除作者
// @Summary      删除作者
// @Description  删除作者,名下图书及其书评级联删除
// @Tags         作者
// @Param        id path int true "作者ID"
// @Success      204 "删除成功"
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [delete]
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Books 作者名下图书
// @Summary      作者名下图书
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {array} appbook.BookDTO
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id}/libros [get]
func (h *AuthorHandler) Books(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.booksUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
