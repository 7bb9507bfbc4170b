package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/biblioteca/internal/application/book"
	"github.com/xiebiao/biblioteca/internal/interface/http/dto"
	apperrors "github.com/xiebiao/biblioteca/pkg/errors"
	"github.com/xiebiao/biblioteca/pkg/response"
)

// dateLayout 出版日期的请求格式
const dateLayout = "2006-01-02"

// BookHandler 图书HTTP处理器
type BookHandler struct {
	createUseCase   *appbook.CreateBookUseCase
	getUseCase      *appbook.GetBookUseCase
	listUseCase     *appbook.ListBooksUseCase
	updateUseCase   *appbook.UpdateBookUseCase
	deleteUseCase   *appbook.DeleteBookUseCase
	statsUseCase    *appbook.BookStatsUseCase
	byAuthorUseCase *appbook.BooksByAuthorUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	createUseCase *appbook.CreateBookUseCase,
	getUseCase *appbook.GetBookUseCase,
	listUseCase *appbook.ListBooksUseCase,
	updateUseCase *appbook.UpdateBookUseCase,
	deleteUseCase *appbook.DeleteBookUseCase,
	statsUseCase *appbook.BookStatsUseCase,
	byAuthorUseCase *appbook.BooksByAuthorUseCase,
) *BookHandler {
	return &BookHandler{
		createUseCase:   createUseCase,
		getUseCase:      getUseCase,
		listUseCase:     listUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		statsUseCase:    statsUseCase,
		byAuthorUseCase: byAuthorUseCase,
	}
}

// parseDate 解析YYYY-MM-DD格式的出版日期
func parseDate(raw string) (time.Time, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, apperrors.New(apperrors.ErrCodeBindError, "fecha_publicacion格式必须为YYYY-MM-DD")
	}
	return t, nil
}

// List 图书列表
// @Summary      图书列表
// @Description  分页查询图书,支持作者、年份过滤,搜索与排序
// @Tags         图书
// @Produce      json
// @Param        page query int false "页码(从1开始)"
// @Param        author query int false "作者ID精确过滤(author_id同义)"
// @Param        year query int false "出版年份精确过滤"
// @Param        search query string false "搜索关键词(书名、简介、作者姓名)"
// @Param        ordering query string false "排序字段(titulo、fecha_publicacion、publication_year,前缀-为降序)"
// @Success      200 {object} response.PageData
// @Router       /api/v1/books [get]
func (h *BookHandler) List(c *gin.Context) {
	page, err := queryPage(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), appbook.ListBooksRequest{
		Page:     page,
		Search:   c.Query("search"),
		Autor:    queryUint(c, "author", "author_id", "autor"),
		Year:     queryInt(c, "year"),
		Ordering: c.Query("ordering"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, result.Items, result.Total, result.Page)
}

// Get 图书详情
// @Summary      图书详情
// @Description  详情投影的autor为完整作者表示
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} appbook.BookDetailDTO
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
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

// Create 创建图书
// @Summary      创建图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} appbook.BookDTO
// @Failure      400 {object} response.Response "字段校验失败"
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	date, err := parseDate(req.FechaPublicacion)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), appbook.CreateBookRequest{
		Titulo:           req.Titulo,
		Autor:            req.Autor,
		FechaPublicacion: date,
		Resumen:          req.Resumen,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// Update 全量更新图书
// @Summary      更新图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id path int true "图书ID"
// @Param        request body dto.UpdateBookRequest true "图书信息"
// @Success      200 {object} appbook.BookDTO
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [put]
func (h *BookHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	date, err := parseDate(req.FechaPublicacion)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), appbook.UpdateBookRequest{
		ID:               id,
		Titulo:           &req.Titulo,
		Autor:            &req.Autor,
		FechaPublicacion: &date,
		Resumen:          &req.Resumen,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Patch 部分更新图书
// @Summary      部分更新图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id path int true "图书ID"
// @Param        request body dto.PatchBookRequest true "要修改的字段"
// @Success      200 {object} appbook.BookDTO
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [patch]
func (h *BookHandler) Patch(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.PatchBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	var date *time.Time
	if req.FechaPublicacion != nil {
		parsed, err := parseDate(*req.FechaPublicacion)
		if err != nil {
			response.Error(c, err)
			return
		}
		date = &parsed
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), appbook.UpdateBookRequest{
		ID:               id,
		Titulo:           req.Titulo,
		Autor:            req.Autor,
		FechaPublicacion: date,
		Resumen:          req.Resumen,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Delete 删除图书
// @Summary      删除图书
// @Description  删除图书,关联书评级联删除
// @Tags         图书
// @Param        id path int true "图书ID"
// @Success      204 "删除成功"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
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

// Stats 图书评分统计
// @Summary      图书评分统计
// @Description  聚合某图书的平均rating与书评条数
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} appbook.BookStatsResponse
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id}/rating_promedio [get]
func (h *BookHandler) Stats(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.statsUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ByAuthor 按作者查询图书(集合级端点)
// @Summary      按作者查询图书
// @Tags         图书
// @Produce      json
// @Param        author_id query int true "作者ID"
// @Success      200 {array} appbook.BookDTO
// @Failure      400 {object} response.Response "缺少author_id参数"
// @Router       /api/v1/books/por_autor [get]
func (h *BookHandler) ByAuthor(c *gin.Context) {
	authorID := queryUintPtr(c, "author_id")
	if authorID == nil {
		// 对外错误体固定为 {"error": "..."},与历史客户端约定保持一致
		c.JSON(http.StatusBadRequest, gin.H{"error": "author_id parameter required"})
		return
	}

	result, err := h.byAuthorUseCase.Execute(c.Request.Context(), *authorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
