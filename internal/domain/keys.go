package domain

type CtxKey string

const (
	KeyActorID   CtxKey = "ActorID"
	KeyActorRole CtxKey = "ActorRole"
)
