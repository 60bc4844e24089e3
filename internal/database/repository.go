package database

import (
	"context"
	"fmt"
	"time"

	"go-newspulse-automation/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func ConnectDB(ctx context.Context, connString string) (*Repository, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database url: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	// IMPORTANT: Supabase connection pooler (PgBouncer in Transaction mode)
	// does not support prepared statements easily. We MUST disable the statement cache.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	// Ping to ensure connection
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	return &Repository{db: pool}, nil
}

func (r *Repository) Close() {
	if r.db != nil {
		r.db.Close()
	}
}

// ---------------- ARTICLE OPERATIONS ----------------

// SaveArticle inserts a scored article or refreshes an existing one (based on source + url)
func (r *Repository) SaveArticle(ctx context.Context, article *models.Article) (*models.Article, error) {
	query := `
		INSERT INTO articles (source, url, title, company, published, body_text, confidence, mentions, sentiment, sentiment_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (source, url)
		DO UPDATE SET title = EXCLUDED.title, confidence = EXCLUDED.confidence,
			sentiment = EXCLUDED.sentiment, sentiment_score = EXCLUDED.sentiment_score
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		article.Source, article.URL, article.Title, article.Company, article.Published,
		article.BodyText, article.Confidence, article.Mentions, article.Sentiment, article.SentimentScore).
		Scan(&article.ID, &article.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to save article: %w", err)
	}

	return article, nil
}

// GetArticleByURL retrieves an article by source and url
func (r *Repository) GetArticleByURL(ctx context.Context, source, url string) (*models.Article, error) {
	var a models.Article
	query := `SELECT id, source, url, title, company, published, body_text, confidence, mentions, sentiment, sentiment_score, created_at
		FROM articles WHERE source = $1 AND url = $2`
	err := r.db.QueryRow(ctx, query, source, url).
		Scan(&a.ID, &a.Source, &a.URL, &a.Title, &a.Company, &a.Published, &a.BodyText,
			&a.Confidence, &a.Mentions, &a.Sentiment, &a.SentimentScore, &a.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("article not found")
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return &a, nil
}

// ListRecentArticles returns articles for a company from the last N days,
// most confident first
func (r *Repository) ListRecentArticles(ctx context.Context, company string, days int) ([]models.Article, error) {
	query := `SELECT id, source, url, title, company, published, body_text, confidence, mentions, sentiment, sentiment_score, created_at
		FROM articles
		WHERE company = $1 AND created_at > now() - ($2 * interval '1 day')
		ORDER BY confidence DESC`

	rows, err := r.db.Query(ctx, query, company, days)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	var articles []models.Article
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(&a.ID, &a.Source, &a.URL, &a.Title, &a.Company, &a.Published, &a.BodyText,
			&a.Confidence, &a.Mentions, &a.Sentiment, &a.SentimentScore, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}
