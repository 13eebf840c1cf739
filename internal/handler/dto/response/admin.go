package response

import (
	"autopneu-api/internal/domain/site"

	"github.com/jinzhu/copier"
)

// AdminConfigResponse is the operator's working copy: the full document,
// including the password and relay settings the public view strips.
type AdminConfigResponse struct {
	PublicConfigResponse

	AdminPassword             string `json:"adminPassword"`
	EmailNotificationsEnabled bool   `json:"emailNotificationsEnabled"`
	EmailJSServiceID          string `json:"emailjsServiceId"`
	EmailJSTemplateID         string `json:"emailjsTemplateId"`
	EmailJSPublicKey          string `json:"emailjsPublicKey"`
	RecipientEmail            string `json:"recipientEmail"`
}

func FromConfigAdmin(cfg site.Config) (*AdminConfigResponse, error) {
	var resp AdminConfigResponse
	if err := copier.Copy(&resp, cfg); err != nil {
		return nil, err
	}

	// The working copy carries all articles, drafts included.
	resp.Articles = make([]ArticleResponse, 0, len(cfg.Articles))
	if err := copier.Copy(&resp.Articles, cfg.Articles); err != nil {
		return nil, err
	}
	return &resp, nil
}

type GeneratedTextResponse struct {
	Text string `json:"text"`
}
