package store

import (
	"context"
	"fmt"

	"deepcheck_api/models/tables"

	"xorm.io/xorm"
)

// InsertDetection stores a detection run with its frame analyses atomically.
func (s *Store) InsertDetection(ctx context.Context, result *tables.DetectionResult, frames []tables.FrameAnalysis) error {
	return s.inTx(ctx, func(sess *xorm.Session) error {
		if _, err := sess.Insert(result); err != nil {
			return fmt.Errorf("insert detection: %w", err)
		}
		for i := range frames {
			frames[i].DetectionResultID = result.ID
			if _, err := sess.Insert(&frames[i]); err != nil {
				return fmt.Errorf("insert frame %d: %w", frames[i].FrameNumber, err)
			}
		}
		return nil
	})
}

func (s *Store) GetDetection(ctx context.Context, userID, id string) (*tables.DetectionResult, error) {
	var result tables.DetectionResult
	has, err := s.session(ctx).Where("id = ? AND user_id = ?", id, userID).Get(&result)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, ErrNotFound
	}
	return &result, nil
}

func (s *Store) ListDetections(ctx context.Context, userID string, limit, offset int) ([]tables.DetectionResult, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var results []tables.DetectionResult
	err := s.session(ctx).Where("user_id = ?", userID).
		Desc("created_at").Limit(limit, offset).Find(&results)
	return results, err
}

func (s *Store) ListFrameAnalyses(ctx context.Context, detectionID string) ([]tables.FrameAnalysis, error) {
	var frames []tables.FrameAnalysis
	err := s.session(ctx).Where("detection_result_id = ?", detectionID).
		Asc("frame_number").Find(&frames)
	return frames, err
}

// AnnotateDetection updates only the user-owned annotation fields.
func (s *Store) AnnotateDetection(ctx context.Context, userID, id string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	n, err := s.session(ctx).Table(new(tables.DetectionResult)).
		Where("id = ? AND user_id = ?", id, userID).Update(updates)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteDetection cascades to the frame analyses and nulls the reference in
// any report filed against it. Reports themselves survive.
func (s *Store) DeleteDetection(ctx context.Context, userID, id string) error {
	return s.inTx(ctx, func(sess *xorm.Session) error {
		n, err := sess.Where("id = ? AND user_id = ?", id, userID).Delete(new(tables.DetectionResult))
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		if _, err := sess.Where("detection_result_id = ?", id).Delete(new(tables.FrameAnalysis)); err != nil {
			return err
		}
		_, err = sess.Exec("UPDATE reports SET detection_result_id = NULL WHERE detection_result_id = ?", id)
		return err
	})
}
