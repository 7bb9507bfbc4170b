// seed 初始数据填充工具
//
// 向数据库写入一组作者、图书与书评的示例数据，
// 便于本地开发与集成测试。重复执行会产生重复数据，
// 仅用于空库初始化。
//
// 用法：
//
//	go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xiebiao/biblioteca/internal/domain/author"
	"github.com/xiebiao/biblioteca/internal/domain/book"
	"github.com/xiebiao/biblioteca/internal/domain/review"
	"github.com/xiebiao/biblioteca/internal/infrastructure/config"
	"github.com/xiebiao/biblioteca/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/biblioteca/pkg/logger"
)

type authorSeed struct {
	name        string
	nationality string
}

type bookSeed struct {
	title     string
	authorIdx int // authorSeeds 下标
	published time.Time
	summary   string
}

type reviewSeed struct {
	bookIdx int // bookSeeds 下标
	text    string
	score   int
	rating  float64
}

var authorSeeds = []authorSeed{
	{"Gabriel García Márquez", "Colombiana"},
	{"Isabel Allende", "Chilena"},
	{"Mario Vargas Llosa", "Peruana"},
	{"Julio Cortázar", "Argentina"},
}

var bookSeeds = []bookSeed{
	{
		title:     "Cien años de soledad",
		authorIdx: 0,
		published: time.Date(1967, 6, 5, 0, 0, 0, 0, time.UTC),
		summary:   "Novela emblemática del realismo mágico que narra la historia de la familia Buendía a lo largo de siete generaciones en el pueblo ficticio de Macondo.",
	},
	{
		title:     "El amor en los tiempos del cólera",
		authorIdx: 0,
		published: time.Date(1985, 1, 1, 0, 0, 0, 0, time.UTC),
		summary:   "Historia de amor que se desarrolla a lo largo de más de cincuenta años, mostrando cómo el amor puede perdurar a través del tiempo y las adversidades.",
	},
	{
		title:     "La casa de los espíritus",
		authorIdx: 1,
		published: time.Date(1982, 1, 1, 0, 0, 0, 0, time.UTC),
		summary:   "Primera novela de Isabel Allende que narra la saga de la familia Trueba a lo largo de cuatro generaciones, combinando elementos de realismo mágico con la historia política de Chile.",
	},
	{
		title:     "Eva Luna",
		authorIdx: 1,
		published: time.Date(1987, 1, 1, 0, 0, 0, 0, time.UTC),
		summary:   "Historia de una joven que crece en un país latinoamericano sin nombre, contando historias que la ayudan a sobrevivir y encontrar su lugar en el mundo.",
	},
	{
		title:     "La ciudad y los perros",
		authorIdx: 2,
		published: time.Date(1963, 1, 1, 0, 0, 0, 0, time.UTC),
		summary:   "Primera novela de Vargas Llosa que explora la vida en un colegio militar de Lima, mostrando la violencia y la corrupción que existe en la sociedad peruana.",
	},
	{
		title:     "Rayuela",
		authorIdx: 3,
		published: time.Date(1963, 6, 28, 0, 0, 0, 0, time.UTC),
		summary:   "Novela experimental que puede leerse de dos formas diferentes, siguiendo el orden tradicional o el orden propuesto por el autor, explorando temas como el amor, la búsqueda de sentido y la identidad.",
	},
}

var reviewSeeds = []reviewSeed{
	{0, "Una obra maestra de la literatura latinoamericana. García Márquez crea un mundo mágico y realista que atrapa desde la primera página. La narrativa es fluida y los personajes son inolvidables.", 5, 4.9},
	{0, "Excelente novela, aunque puede resultar compleja por la cantidad de personajes con nombres similares. El realismo mágico está presente en cada página.", 4, 4.2},
	{1, "Una historia de amor conmovedora que muestra la paciencia y la perseverancia. La prosa de García Márquez es exquisita y cada página está llena de poesía.", 5, 4.8},
	{2, "Una saga familiar fascinante que combina elementos mágicos con la realidad política. Isabel Allende demuestra su maestría narrativa desde su primera novela.", 5, 4.7},
	{2, "Buen libro, aunque algunos pasajes pueden ser un poco lentos. Los personajes femeninos están muy bien desarrollados.", 4, 4.0},
	{3, "Una historia encantadora sobre el poder de las historias. La protagonista es memorable y la narrativa fluye de manera natural.", 4, 4.1},
	{4, "Una novela dura y realista que muestra las consecuencias de la violencia institucionalizada. Vargas Llosa es un maestro de la narrativa.", 5, 4.6},
	{5, "Una obra experimental fascinante. La posibilidad de leerla de dos formas diferentes la hace única. Requiere atención y paciencia, pero vale la pena.", 4, 4.3},
	{5, "Libro complejo pero innovador. La estructura no lineal puede desconcertar al principio, pero una vez que te acostumbras, es una experiencia literaria única.", 4, 4.2},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("加载配置失败")
	}

	logger.Init(logger.Config{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})

	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("初始化数据库失败")
	}

	// 通过领域服务写入，走与API相同的校验路径
	authorService := author.NewService(mysql.NewAuthorRepository(db))
	bookService := book.NewService(mysql.NewBookRepository(db))
	reviewService := review.NewService(mysql.NewReviewRepository(db))

	ctx := context.Background()

	authors := make([]*author.Author, 0, len(authorSeeds))
	for _, s := range authorSeeds {
		a, err := authorService.CreateAuthor(ctx, s.name, s.nationality)
		if err != nil {
			log.Fatal().Err(err).Str("nombre", s.name).Msg("创建作者失败")
		}
		authors = append(authors, a)
	}
	log.Info().Int("count", len(authors)).Msg("作者创建完成")

	books := make([]*book.Book, 0, len(bookSeeds))
	for _, s := range bookSeeds {
		b, err := bookService.CreateBook(ctx, s.title, authors[s.authorIdx].ID, s.published, s.summary)
		if err != nil {
			log.Fatal().Err(err).Str("titulo", s.title).Msg("创建图书失败")
		}
		books = append(books, b)
	}
	log.Info().Int("count", len(books)).Msg("图书创建完成")

	for _, s := range reviewSeeds {
		rating := s.rating
		if _, err := reviewService.CreateReview(ctx, books[s.bookIdx].ID, s.text, s.score, &rating, nil); err != nil {
			log.Fatal().Err(err).Uint("libro", books[s.bookIdx].ID).Msg("创建书评失败")
		}
	}
	log.Info().Int("count", len(reviewSeeds)).Msg("书评创建完成")

	log.Info().
		Int("autores", len(authors)).
		Int("libros", len(books)).
		Int("resenas", len(reviewSeeds)).
		Msg("初始数据填充完成")
}
