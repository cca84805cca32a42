package model

import "github.com/golang-jwt/jwt/v5"

type CentrifugoEvent struct {
	Method string      `json:"method"`
	Params interface{} `json:"params"`
}

type CentrifugoEventParams struct {
	Channel string        `json:"channel"`
	Data    RealtimeEvent `json:"data"`
}

type CentrifugoConnectClaims struct {
	jwt.RegisteredClaims

	Role Role `json:"role"`
}

type CentrifugoSubscribeClaims struct {
	jwt.RegisteredClaims

	Channel string `json:"channel"`
	Client  string `json:"client,omitempty"`

	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}
