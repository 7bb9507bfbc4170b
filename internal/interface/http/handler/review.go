package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	appreview "github.com/xiebiao/biblioteca/internal/application/review"
	"github.com/xiebiao/biblioteca/internal/interface/http/dto"
	apperrors "github.com/xiebiao/biblioteca/pkg/errors"
	"github.com/xiebiao/biblioteca/pkg/response"
)

// ReviewHandler 书评HTTP处理器
type ReviewHandler struct {
	createUseCase *appreview.CreateReviewUseCase
	getUseCase    *appreview.GetReviewUseCase
	listUseCase   *appreview.ListReviewsUseCase
	updateUseCase *appreview.UpdateReviewUseCase
	deleteUseCase *appreview.DeleteReviewUseCase
}

// NewReviewHandler 创建书评处理器
func NewReviewHandler(
	createUseCase *appreview.CreateReviewUseCase,
	getUseCase *appreview.GetReviewUseCase,
	listUseCase *appreview.ListReviewsUseCase,
	updateUseCase *appreview.UpdateReviewUseCase,
	deleteUseCase *appreview.DeleteReviewUseCase,
) *ReviewHandler {
	return &ReviewHandler{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List 书评列表
// @Summary      书评列表
// @Description  分页查询书评,支持图书、打分过滤与rating范围过滤
// @Tags         书评
// @Produce      json
// @Param        page query int false "页码(从1开始)"
// @Param        libro query int false "图书ID精确过滤"
// @Param        calificacion query int false "打分精确过滤"
// @Param        rating_min query number false "rating下界(闭区间,非法值忽略)"
// @Param        rating_max query number false "rating上界(闭区间,非法值忽略)"
// @Param        search query string false "搜索关键词(内容、所评图书书名)"
// @Param        ordering query string false "排序字段(fecha、calificacion、rating,前缀-为降序)"
// @Success      200 {object} response.PageData
// @Router       /api/v1/reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	page, err := queryPage(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), appreview.ListReviewsRequest{
		Page:         page,
		Search:       c.Query("search"),
		Libro:        queryUintPtr(c, "libro"),
		Calificacion: queryIntPtr(c, "calificacion"),
		RatingMin:    queryFloatPtr(c, "rating_min"),
		RatingMax:    queryFloatPtr(c, "rating_max"),
		Ordering:     c.Query("ordering"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, result.Items, result.Total, result.Page)
}

// Get 书评详情
// @Summary      书评详情
// @Tags         书评
// @Produce      json
// @Param        id path int true "书评ID"
// @Success      200 {object} appreview.ReviewDTO
// @Failure      404 {object} response.Response "书评不存在"
// @Router       /api/v1/reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
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

// Create 创建书评
// @Summary      创建书评
// @Tags         书评
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateReviewRequest true "书评信息"
// @Success      201 {object} appreview.ReviewDTO
// @Failure      400 {object} response.Response "字段校验失败"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	var fecha *time.Time
	if req.Fecha != nil {
		parsed, err := time.Parse(time.RFC3339, *req.Fecha)
		if err != nil {
			response.ErrorWithCode(c, apperrors.ErrCodeBindError, "fecha格式必须为RFC3339")
			return
		}
		fecha = &parsed
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), appreview.CreateReviewRequest{
		Libro:        req.Libro,
		Texto:        req.Texto,
		Calificacion: req.Calificacion,
		Rating:       req.Rating,
		Fecha:        fecha,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// Update 全量更新书评
// @Summary      更新书评
// @Description  fecha创建后不可变,不接受更新
// @Tags         书评
// @Accept       json
// @Produce      json
// @Param        id path int true "书评ID"
// @Param        request body dto.UpdateReviewRequest true "书评信息"
// @Success      200 {object} appreview.ReviewDTO
// @Failure      404 {object} response.Response "书评不存在"
// @Router       /api/v1/reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), appreview.UpdateReviewRequest{
		ID:           id,
		Texto:        &req.Texto,
		Calificacion: &req.Calificacion,
		Rating:       req.Rating,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Patch 部分更新书评
// @Summary      部分更新书评
// @Tags         书评
// @Accept       json
// @Produce      json
// @Param        id path int true "书评ID"
// @Param        request body dto.PatchReviewRequest true "要修改的字段"
// @Success      200 {object} appreview.ReviewDTO
// @Failure      404 {object} response.Response "书评不存在"
// @Router       /api/v1/reviews/{id} [patch]
func (h *ReviewHandler) Patch(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.PatchReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), appreview.UpdateReviewRequest{
		ID:           id,
		Texto:        req.Texto,
		Calificacion: req.Calificacion,
		Rating:       req.Rating,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Delete 删除书评
// @Summary      删除书评
// @Tags         书评
// @Param        id path int true "书评ID"
// @Success      204 "删除成功"
// @Failure      404 {object} response.Response "书评不存在"
// @Router       /api/v1/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
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
