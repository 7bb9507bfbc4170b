package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 教学说明：测试辅助工具
// 这个文件包含集成测试的通用辅助函数，遵循DRY原则（Don't Repeat Yourself）
// 将重复的代码（HTTP请求、JSON解析）封装成可复用的函数
//
// 运行前置条件：API服务已在本地8080端口启动，且MySQL/Redis可用

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080/api/v1"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// Response 统一响应结构
type Response struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
	Data    json.RawMessage   `json:"data"`
}

// PageData 分页数据
type PageData struct {
	Count    int64           `json:"count"`
	Next     *int            `json:"next"`
	Previous *int            `json:"previous"`
	Results  json.RawMessage `json:"results"`
}

// AuthorData 作者响应数据
type AuthorData struct {
	ID             uint   `json:"id"`
	Nombre         string `json:"nombre"`
	Nacionalidad   string `json:"nacionalidad"`
	CantidadLibros int64  `json:"cantidad_libros"`
}

// BookData 图书列表/写操作响应数据（autor为作者ID）
type BookData struct {
	ID               uint         `json:"id"`
	Titulo           string       `json:"titulo"`
	Autor            uint         `json:"autor"`
	AuthorName       string       `json:"author_name"`
	FechaPublicacion string       `json:"fecha_publicacion"`
	Year             int          `json:"year"`
	Resumen          string       `json:"resumen"`
	RecentReviews    []ReviewData `json:"recent_reviews"`
	RatingPromedio   *float64     `json:"rating_promedio"`
}

// BookDetailData 图书详情响应数据（autor为嵌套作者对象）
type BookDetailData struct {
	ID               uint         `json:"id"`
	Titulo           string       `json:"titulo"`
	Autor            AuthorData   `json:"autor"`
	AuthorName       string       `json:"author_name"`
	FechaPublicacion string       `json:"fecha_publicacion"`
	Year             int          `json:"year"`
	Resumen          string       `json:"resumen"`
	RecentReviews    []ReviewData `json:"recent_reviews"`
	RatingPromedio   *float64     `json:"rating_promedio"`
}

// ReviewData 书评响应数据
type ReviewData struct {
	ID           uint     `json:"id"`
	Libro        uint     `json:"libro"`
	Texto        string   `json:"texto"`
	Calificacion int      `json:"calificacion"`
	Rating       *float64 `json:"rating"`
	Fecha        string   `json:"fecha"`
}

// StatsData 评分聚合响应数据
type StatsData struct {
	LibroID          uint     `json:"libro_id"`
	Titulo           string   `json:"titulo"`
	RatingPromedio   *float64 `json:"rating_promedio"`
	TotalResenas     int64    `json:"total_resenas"`
	ResenasConRating int64    `json:"resenas_con_rating"`
}

// DoJSON 发送HTTP请求并解析统一响应结构
//
// 教学说明：
// - 使用*testing.T参数，可以在失败时立即终止测试
// - 使用require包进行断言，失败会立即停止（不继续执行）
// - 同时返回HTTP状态码，便于断言201/204/404等语义
// - 204等无响应体的情况返回空Response
func DoJSON(t *testing.T, method, url string, data interface{}) (*Response, int) {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	if len(raw) > 0 {
		err = json.Unmarshal(raw, &result)
		require.NoError(t, err, "解析JSON响应失败: %s", string(raw))
	}

	return &result, resp.StatusCode
}

// GetJSON 发送GET请求
func GetJSON(t *testing.T, url string) (*Response, int) {
	t.Helper()
	return DoJSON(t, http.MethodGet, url, nil)
}

// PostJSON 发送POST请求
func PostJSON(t *testing.T, url string, data interface{}) (*Response, int) {
	t.Helper()
	return DoJSON(t, http.MethodPost, url, data)
}

// GetRawBody 发送GET请求并返回原始响应体
// 用于断言不走统一响应结构的端点（如por_autor缺参时的错误体）
func GetRawBody(t *testing.T, url string) ([]byte, int) {
	t.Helper()

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Get(url)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")
	return raw, resp.StatusCode
}

// UnmarshalData 将响应Data解析到目标结构
func UnmarshalData(t *testing.T, resp *Response, target interface{}) {
	t.Helper()
	require.NotNil(t, resp.Data, "响应Data为空")
	err := json.Unmarshal(resp.Data, target)
	require.NoError(t, err, "解析Data失败: %s", string(resp.Data))
}

// UnmarshalPage 将响应Data解析为分页结构
func UnmarshalPage(t *testing.T, resp *Response) *PageData {
	t.Helper()
	var page PageData
	UnmarshalData(t, resp, &page)
	return &page
}

// UnmarshalResults 将分页Results解析到目标切片
func UnmarshalResults(t *testing.T, page *PageData, target interface{}) {
	t.Helper()
	err := json.Unmarshal(page.Results, target)
	require.NoError(t, err, "解析Results失败: %s", string(page.Results))
}

// GenerateTestName 生成唯一的测试名称
//
// 教学说明：
// 使用纳秒时间戳确保名称唯一性，避免测试重复运行时数据冲突
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}

// ValidSummary 满足最小长度要求的测试简介
const ValidSummary = "Resumen de prueba para integración, con longitud suficiente para superar la validación de cincuenta caracteres exigida a todos los libros del catálogo."

// CreateTestAuthor 创建测试作者并返回ID
func CreateTestAuthor(t *testing.T, nombre, nacionalidad string) uint {
	t.Helper()

	resp, status := PostJSON(t, BaseURL+"/authors", map[string]string{
		"nombre":       nombre,
		"nacionalidad": nacionalidad,
	})
	require.Equal(t, http.StatusCreated, status, "创建作者失败: %s", resp.Message)
	require.Equal(t, 0, resp.Code, "创建作者失败: %s", resp.Message)

	var author AuthorData
	UnmarshalData(t, resp, &author)
	return author.ID
}

// CreateTestBook 创建测试图书并返回ID
func CreateTestBook(t *testing.T, authorID uint, titulo, fecha string) uint {
	t.Helper()

	resp, status := PostJSON(t, BaseURL+"/books", map[string]interface{}{
		"titulo":            titulo,
		"autor":             authorID,
		"fecha_publicacion": fecha,
		"resumen":           ValidSummary,
	})
	require.Equal(t, http.StatusCreated, status, "创建图书失败: %s", resp.Message)
	require.Equal(t, 0, resp.Code, "创建图书失败: %s", resp.Message)

	var book BookData
	UnmarshalData(t, resp, &book)
	return book.ID
}

// CreateTestReview 创建测试书评并返回ID
func CreateTestReview(t *testing.T, bookID uint, texto string, calificacion int, rating *float64) uint {
	t.Helper()

	body := map[string]interface{}{
		"libro":        bookID,
		"texto":        texto,
		"calificacion": calificacion,
	}
	if rating != nil {
		body["rating"] = *rating
	}

	resp, status := PostJSON(t, BaseURL+"/reviews", body)
	require.Equal(t, http.StatusCreated, status, "创建书评失败: %s", resp.Message)
	require.Equal(t, 0, resp.Code, "创建书评失败: %s", resp.Message)

	var review ReviewData
	UnmarshalData(t, resp, &review)
	return review.ID
}

// FloatPtr 返回float64指针，便于构造可选rating
func FloatPtr(v float64) *float64 { return &v }
