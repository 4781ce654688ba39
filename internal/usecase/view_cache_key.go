package usecase

import "github.com/google/uuid"

func profileViewKey(userID uuid.UUID) string      { return "view:profile:" + userID.String() }
func statsViewKey(userID uuid.UUID) string        { return "view:stats:" + userID.String() }
func recordingsViewKey(userID uuid.UUID) string   { return "view:recordings:" + userID.String() }
func applicationsViewKey(userID uuid.UUID) string { return "view:applications:" + userID.String() }

const academiesViewKey = "view:academies"
