package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/lineup/internal/db"
	"github.com/alexanderramin/lineup/internal/domain"
)

// SQLiteCommunityRepo implements CommunityRepo using a SQLite database.
type SQLiteCommunityRepo struct {
	db db.DBTX
}

// NewSQLiteCommunityRepo creates a new SQLiteCommunityRepo.
func NewSQLiteCommunityRepo(conn db.DBTX) *SQLiteCommunityRepo {
	return &SQLiteCommunityRepo{db: conn}
}

// cardRow and markerRow are the JSON shapes of cards_data and special_slots.
type cardRow struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	Pos  int    `json:"pos"`
}

type markerRow struct {
	Slot int    `json:"slot"`
	Type string `json:"type"`
}

const communityColumns = `uuid, name, hero, day_from, day_to,
	day_plan_tag, strength_tag, difficulty_tag,
	cards_data, special_slots, lineup_payload, version,
	likes_count, favorites_count, author_name, video_bv, video_title, created_at`

func (r *SQLiteCommunityRepo) Create(ctx context.Context, l *domain.CommunityLineup) error {
	cards := make([]cardRow, 0, len(l.Cards))
	for _, c := range l.Cards {
		cards = append(cards, cardRow{ID: c.ID, Role: string(c.Role), Pos: c.Pos})
	}
	markers := make([]markerRow, 0, len(l.SpecialSlots))
	for _, m := range l.SpecialSlots {
		markers = append(markers, markerRow{Slot: m.Slot, Type: string(m.Type)})
	}
	cardsJSON, err := json.Marshal(cards)
	if err != nil {
		return fmt.Errorf("encoding cards: %w", err)
	}
	markersJSON, err := json.Marshal(markers)
	if err != nil {
		return fmt.Errorf("encoding markers: %w", err)
	}

	query := `INSERT INTO community_lineups (` + communityColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		l.UUID,
		l.Name,
		string(l.Hero),
		l.DayFrom,
		l.DayTo,
		nullableString(string(l.DayPlanTag)),
		nullableString(string(l.StrengthTag)),
		nullableString(string(l.DifficultyTag)),
		string(cardsJSON),
		string(markersJSON),
		string(l.Payload),
		l.Version,
		l.Likes,
		l.Favorites,
		l.AuthorName,
		nullableString(l.VideoBV),
		nullableString(l.VideoTitle),
		formatTime(l.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting community lineup: %w", err)
	}
	return nil
}

func (r *SQLiteCommunityRepo) GetByUUID(ctx context.Context, uuid string) (*domain.CommunityLineup, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+communityColumns+` FROM community_lineups WHERE uuid = ?`, uuid)
	l, err := scanCommunityLineup(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("community lineup %s: %w", uuid, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning community lineup: %w", err)
	}
	return l, nil
}

func (r *SQLiteCommunityRepo) ListNewest(ctx context.Context, limit int) ([]*domain.CommunityLineup, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+communityColumns+` FROM community_lineups ORDER BY created_at DESC, uuid LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing community lineups: %w", err)
	}
	defer rows.Close()

	var out []*domain.CommunityLineup
	for rows.Next() {
		l, err := scanCommunityLineup(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning community lineup: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *SQLiteCommunityRepo) SetInteraction(ctx context.Context, uuid string, typ domain.InteractionType, nickname string, enabled bool) error {
	var err error
	if enabled {
		_, err = r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO community_interactions (target_uuid, interaction_type, nickname, created_at)
			 VALUES (?, ?, ?, ?)`, uuid, string(typ), nickname, nowUTC())
	} else {
		_, err = r.db.ExecContext(ctx,
			`DELETE FROM community_interactions WHERE target_uuid = ? AND interaction_type = ? AND nickname = ?`,
			uuid, string(typ), nickname)
	}
	if err != nil {
		return fmt.Errorf("updating %s: %w", typ, err)
	}
	return nil
}

func (r *SQLiteCommunityRepo) HasInteraction(ctx context.Context, uuid string, typ domain.InteractionType, nickname string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM community_interactions WHERE target_uuid = ? AND interaction_type = ? AND nickname = ?`,
		uuid, string(typ), nickname).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", typ, err)
	}
	return n > 0, nil
}

func (r *SQLiteCommunityRepo) Recount(ctx context.Context, uuid string, typ domain.InteractionType) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM community_interactions WHERE target_uuid = ? AND interaction_type = ?`,
		uuid, string(typ)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", typ, err)
	}

	column := "likes_count"
	if typ == domain.InteractionFavorite {
		column = "favorites_count"
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE community_lineups SET `+column+` = ? WHERE uuid = ?`, n, uuid)
	if err != nil {
		return 0, fmt.Errorf("storing %s count: %w", typ, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return 0, fmt.Errorf("community lineup %s: %w", uuid, ErrNotFound)
	}
	return n, nil
}

func scanCommunityLineup(s scanner) (*domain.CommunityLineup, error) {
	var (
		l                               domain.CommunityLineup
		hero, version, payload          string
		dayPlan, strength, difficulty   sql.NullString
		cardsJSON, markersJSON, created string
		videoBV, videoTitle             sql.NullString
	)
	err := s.Scan(
		&l.UUID, &l.Name, &hero, &l.DayFrom, &l.DayTo,
		&dayPlan, &strength, &difficulty,
		&cardsJSON, &markersJSON, &payload, &version,
		&l.Likes, &l.Favorites, &l.AuthorName, &videoBV, &videoTitle, &created,
	)
	if err != nil {
		return nil, err
	}
	l.Hero = domain.Hero(hero)
	l.Version = version
	l.Payload = []byte(payload)
	l.DayPlanTag = domain.DayPlanTag(stringOrEmpty(dayPlan))
	l.StrengthTag = domain.StrengthTag(stringOrEmpty(strength))
	l.DifficultyTag = domain.DifficultyTag(stringOrEmpty(difficulty))
	l.VideoBV = stringOrEmpty(videoBV)
	l.VideoTitle = stringOrEmpty(videoTitle)
	l.CreatedAt = parseTime(created)

	var cards []cardRow
	if err := json.Unmarshal([]byte(cardsJSON), &cards); err != nil {
		return nil, fmt.Errorf("decoding cards: %w", err)
	}
	for _, c := range cards {
		l.Cards = append(l.Cards, domain.CommunityCard{ID: c.ID, Role: domain.CommunityRole(c.Role), Pos: c.Pos})
	}
	var markers []markerRow
	if err := json.Unmarshal([]byte(markersJSON), &markers); err != nil {
		return nil, fmt.Errorf("decoding markers: %w", err)
	}
	for _, m := range markers {
		l.SpecialSlots = append(l.SpecialSlots, domain.CommunityMarker{Slot: m.Slot, Type: domain.MarkerType(m.Type)})
	}
	return &l, nil
}
