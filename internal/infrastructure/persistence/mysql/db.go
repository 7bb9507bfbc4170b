package mysql

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/biblioteca/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	// 1. 构建DSN连接字符串
	dsn := cfg.Database.DSN()

	// 2. 配置GORM日志
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	// 3. 连接数据库
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 4. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// 5. 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Info().Msg("数据库连接成功")

	// 6. 自动迁移表结构（开发环境）
	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// 教学要点:级联删除依赖数据库外键(ON DELETE CASCADE),
// 因此模型不使用软删除——软删除不会触发数据库级联
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&AuthorModel{},
		&BookModel{},
		&ReviewModel{},
	)
}

// AuthorModel GORM作者模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/author/entity.go是领域实体，不依赖GORM
// 3. Repository负责两者之间的转换
// 4. BookCount是查询时由子查询填充的读侧字段,不参与迁移
type AuthorModel struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"index;size:100;not null;comment:姓名"`
	Nationality string    `gorm:"size:50;comment:国籍"`
	BookCount   int64     `gorm:"->;-:migration"` // 子查询填充,不落库
	CreatedAt   time.Time `gorm:"comment:创建时间"`
	UpdatedAt   time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// BookModel GORM图书模型
// 设计说明:
// 1. AuthorID外键带ON DELETE CASCADE,删除作者时数据库级联删除其图书
// 2. PublicationDate只存日期部分,年份查询用YEAR()函数提取
type BookModel struct {
	ID              uint          `gorm:"primaryKey"`
	Title           string        `gorm:"index;size:200;not null;comment:书名"`
	AuthorID        uint          `gorm:"index;not null;comment:作者ID"`
	Author          AuthorModel   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	PublicationDate time.Time     `gorm:"type:date;index;not null;comment:出版日期"`
	Summary         string        `gorm:"type:text;not null;comment:简介"`
	Reviews         []ReviewModel `gorm:"foreignKey:BookID"` // 一对多关联
	CreatedAt       time.Time     `gorm:"comment:创建时间"`
	UpdatedAt       time.Time     `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// ReviewModel GORM书评模型
// 设计说明:
// 1. BookID外键带ON DELETE CASCADE,删除图书时数据库级联删除其书评
// 2. Rating可空(指针类型),聚合时AVG自动跳过NULL
// 3. ReviewedAt是业务上的点评时间,与CreatedAt(落库时间)区分
type ReviewModel struct {
	ID         uint      `gorm:"primaryKey"`
	BookID     uint      `gorm:"index;not null;comment:图书ID"`
	Book       BookModel `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
	Text       string    `gorm:"type:text;not null;comment:书评内容"`
	Score      int       `gorm:"index;type:tinyint;not null;comment:打分(1到5)"`
	Rating     *float64  `gorm:"index;comment:精细评分(0.0到5.0,可空)"`
	ReviewedAt time.Time `gorm:"index;not null;comment:点评时间"`
	CreatedAt  time.Time `gorm:"comment:创建时间"`
	UpdatedAt  time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (ReviewModel) TableName() string {
	return "reviews"
}
