package model

import "time"

// SetLog is one set of an exercise: reps at a weight, followed by RestTime seconds of rest.
type SetLog struct {
	ID            string    `json:"id"`
	ExerciseLogID string    `json:"exercise_log_id"`
	Order         int       `json:"order"`
	Reps          int       `json:"reps"`
	Weight        int       `json:"weight"`
	RestTime      int       `json:"rest_time"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateSetLogRequest struct {
	ExerciseLogID string `json:"exercise_log_id"`
	Reps          int    `json:"reps"`
	Weight        int    `json:"weight"`
	RestTime      int    `json:"rest_time"`
}

type UpdateSetLogRequest struct {
	Reps     *int `json:"reps"`
	Weight   *int `json:"weight"`
	RestTime *int `json:"rest_time"`
}

type SetLogResponse struct {
	ID            string `json:"id"`
	ExerciseLogID string `json:"exercise_log_id"`
	Order         int    `json:"order"`
	Reps          int    `json:"reps"`
	Weight        int    `json:"weight"`
	RestTime      int    `json:"rest_time"`
}

type SetLogList struct {
	SetLogs []SetLogResponse `json:"set_logs"`
}

func (s SetLog) Response() SetLogResponse {
	return SetLogResponse{
		ID:            s.ID,
		ExerciseLogID: s.ExerciseLogID,
		Order:         s.Order,
		Reps:          s.Reps,
		Weight:        s.Weight,
		RestTime:      s.RestTime,
	}
}

func SetLogResponses(sets []SetLog) []SetLogResponse {
	out := make([]SetLogResponse, 0, len(sets))
	for _, s := range sets {
		out = append(out, s.Response())
	}
	return out
}
