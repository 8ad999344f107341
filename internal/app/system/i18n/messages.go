// internal/app/system/i18n/messages.go
package i18n

import "github.com/eduardgagite/portfolio/internal/domain/models"

// messages holds the interface copy. Russian is the reference table: every
// key must exist there.
var messages = map[models.Lang]map[string]string{
	models.LangRU: {
		"nav.home":      "Главная",
		"nav.materials": "Материалы",

		"lang.switch": "Язык",
		"lang.ru":     "Русский",
		"lang.en":     "English",

		"meta.homeTitle":       "Eduard Gagite — Backend Developer",
		"meta.homeDescription": "Backend-разработчик. Пишу на Go, работаю с Kafka, RabbitMQ, Docker, gRPC. Делюсь знаниями: курсы по Redis, Docker и другим технологиям.",

		"hero.name":     "Гагитэ Эдуард Станиславович",
		"hero.role":     "Backend-разработчик",
		"hero.about":    "Обо мне",
		"hero.bio":      "Пишу backend на Go. Строю сервисы вокруг Kafka и RabbitMQ, упаковываю их в Docker и настраиваю CI/CD. Проектирую API на gRPC и WebSocket, храню данные в PostgreSQL и Redis.",
		"hero.telegram": "Telegram",
		"hero.email":    "Почта",
		"hero.github":   "GitHub",

		"materials.note":        "Курсы и конспекты для backend-разработчиков",
		"materials.topicsShort": "Redis, Docker",
		"materials.cta":         "Перейти к материалам",

		"materials.introTitle":      "Материалы",
		"materials.introP1":         "Здесь собраны курсы и конспекты по технологиям, с которыми я работаю каждый день.",
		"materials.introP2":         "Материалы разбиты на категории и разделы. Начните с первого раздела или найдите тему через поиск.",
		"materials.introP3":         "Каждая статья существует на русском, а многие и на английском.",
		"materials.philosophyTitle": "Подход",
		"materials.philosophy1":     "сначала идея, потом синтаксис",
		"materials.philosophy2":     "примеры из реальных проектов",
		"materials.philosophy3":     "коротко и по делу",
		"materials.categories":      "Категории",
		"materials.count":           "материалов: %d",

		"materials.sidebarIntro":      "Курсы по темам",
		"materials.filtersTitle":      "Фильтры",
		"materials.structureTitle":    "Структура",
		"materials.searchLabel":       "Поиск",
		"materials.searchPlaceholder": "Название или описание",
		"materials.levelFilter":       "Уровень",
		"materials.tagsFilter":        "Теги",
		"materials.anyLevel":          "Любой уровень",
		"materials.anyTag":            "Любой тег",
		"materials.filtersApply":      "Применить",
		"materials.filtersReset":      "Сбросить",
		"materials.noMatches":         "Ничего не найдено",
		"materials.emptyState":        "Материалов пока нет",

		"materials.prevArticle":     "Предыдущая статья",
		"materials.nextArticle":     "Следующая статья",
		"materials.published":       "Опубликовано",
		"materials.updated":         "Обновлено",
		"materials.availableIn":     "Доступно на языках",
		"materials.loadingMaterial": "Загрузка материала…",
		"materials.contentError":    "Не удалось загрузить текст статьи. Попробуйте обновить страницу.",
		"materials.loadError":       "Не удалось загрузить каталог материалов.",
		"materials.retry":           "Повторить",

		"notFound.title":       "Страница не найдена — Eduard Gagite",
		"notFound.description": "Похоже, ссылка неверная или страница была перемещена.",
		"notFound.heading":     "Страница не найдена",
		"notFound.hint":        "Проверьте адрес или вернитесь на главную. Возможно страница была перемещена.",
		"notFound.goHome":      "На главную",
		"notFound.goMaterials": "К материалам",

		"unavailable.title": "Сервис временно недоступен — Eduard Gagite",

		"footer.copyright": "© %d Eduard Gagite",
	},
	models.LangEN: {
		"nav.home":      "Home",
		"nav.materials": "Materials",

		"lang.switch": "Language",
		"lang.ru":     "Русский",
		"lang.en":     "English",

		"meta.homeTitle":       "Eduard Gagite — Backend Developer",
		"meta.homeDescription": "Backend developer. I write Go and work with Kafka, RabbitMQ, Docker and gRPC. Sharing what I know: courses on Redis, Docker and more.",

		"hero.name":     "Eduard Gagite",
		"hero.role":     "Backend Developer",
		"hero.about":    "About me",
		"hero.bio":      "I build backends in Go. I design services around Kafka and RabbitMQ, ship them with Docker and CI/CD, expose APIs over gRPC and WebSocket, and keep data in PostgreSQL and Redis.",
		"hero.telegram": "Telegram",
		"hero.email":    "Email",
		"hero.github":   "GitHub",

		"materials.note":        "Courses and notes for backend developers",
		"materials.topicsShort": "Redis, Docker",
		"materials.cta":         "Open materials",

		"materials.introTitle":      "Materials",
		"materials.introP1":         "Courses and notes on the technologies I work with every day.",
		"materials.introP2":         "Materials are grouped into categories and sections. Start with the first section or search for a topic.",
		"materials.introP3":         "Every article exists in Russian, and many in English too.",
		"materials.philosophyTitle": "Approach",
		"materials.philosophy1":     "ideas first, syntax second",
		"materials.philosophy2":     "examples from real projects",
		"materials.philosophy3":     "short and to the point",
		"materials.categories":      "Categories",
		"materials.count":           "materials: %d",

		"materials.sidebarIntro":      "Courses by topic",
		"materials.filtersTitle":      "Filters",
		"materials.structureTitle":    "Structure",
		"materials.searchLabel":       "Search",
		"materials.searchPlaceholder": "Title or description",
		"materials.levelFilter":       "Level",
		"materials.tagsFilter":        "Tags",
		"materials.anyLevel":          "Any level",
		"materials.anyTag":            "Any tag",
		"materials.filtersApply":      "Apply",
		"materials.filtersReset":      "Reset",
		"materials.noMatches":         "Nothing found",
		"materials.emptyState":        "No materials yet",

		"materials.prevArticle":     "Previous article",
		"materials.nextArticle":     "Next article",
		"materials.published":       "Published",
		"materials.updated":         "Updated",
		"materials.availableIn":     "Available in",
		"materials.loadingMaterial": "Loading material…",
		"materials.contentError":    "Could not load the article text. Try reloading the page.",
		"materials.loadError":       "Could not load the materials catalog.",
		"materials.retry":           "Retry",

		"notFound.title":       "Page not found — Eduard Gagite",
		"notFound.description": "The link looks wrong or the page has been moved.",
		"notFound.heading":     "Page not found",
		"notFound.hint":        "Check the URL or go back home. The page might have been moved.",
		"notFound.goHome":      "Go home",
		"notFound.goMaterials": "Go to materials",

		"unavailable.title": "Temporarily unavailable — Eduard Gagite",

		"footer.copyright": "© %d Eduard Gagite",
	},
}
