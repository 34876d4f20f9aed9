package vapi

// Account represents the provider account resource.
type Account struct {
	AuthID       string `json:"auth_id"       yaml:"auth_id"`
	AccountType  string `json:"account_type"  yaml:"account_type"`
	Name         string `json:"name"          yaml:"name"`
	Address      string `json:"address"       yaml:"address"`
	City         string `json:"city"          yaml:"city"`
	State        string `json:"state"         yaml:"state"`
	Timezone     string `json:"timezone"      yaml:"timezone"`
	CashCredits  string `json:"cash_credits"  yaml:"cash_credits"`
	BillingMode  string `json:"billing_mode"  yaml:"billing_mode"`
	AutoRecharge bool   `json:"auto_recharge" yaml:"auto_recharge"`
	ResourceURI  string `json:"resource_uri"  yaml:"resource_uri"`
}

// Subaccount represents a subaccount under a parent account.
type Subaccount struct {
	Account     string `json:"account"      yaml:"account"`
	AuthID      string `json:"auth_id"      yaml:"auth_id"`
	AuthToken   string `json:"auth_token"   yaml:"auth_token"`
	Name        string `json:"name"         yaml:"name"`
	Enabled     bool   `json:"enabled"      yaml:"enabled"`
	Created     string `json:"created"      yaml:"created"`
	Modified    string `json:"modified"     yaml:"modified"`
	ResourceURI string `json:"resource_uri" yaml:"resource_uri"`
}

// Application represents a voice/message application resource.
type Application struct {
	AppID              string `json:"app_id"               yaml:"app_id"`
	AppName            string `json:"app_name"             yaml:"app_name"`
	AnswerURL          string `json:"answer_url"           yaml:"answer_url"`
	AnswerMethod       string `json:"answer_method"        yaml:"answer_method"`
	HangupURL          string `json:"hangup_url"           yaml:"hangup_url"`
	HangupMethod       string `json:"hangup_method"        yaml:"hangup_method"`
	FallbackAnswerURL  string `json:"fallback_answer_url"  yaml:"fallback_answer_url"`
	FallbackMethod     string `json:"fallback_method"      yaml:"fallback_method"`
	MessageURL         string `json:"message_url"          yaml:"message_url"`
	MessageMethod      string `json:"message_method"       yaml:"message_method"`
	DefaultNumberApp   bool   `json:"default_number_app"   yaml:"default_number_app"`
	DefaultEndpointApp bool   `json:"default_endpoint_app" yaml:"default_endpoint_app"`
	Enabled            bool   `json:"enabled"              yaml:"enabled"`
	SubAccount         string `json:"sub_account"          yaml:"sub_account"`
	PublicURI          bool   `json:"public_uri"           yaml:"public_uri"`
	ResourceURI        string `json:"resource_uri"         yaml:"resource_uri"`
}

// Meta represents the provider's list pagination envelope.
type Meta struct {
	Limit      int     `json:"limit"       yaml:"limit"`
	Offset     int     `json:"offset"      yaml:"offset"`
	TotalCount int     `json:"total_count" yaml:"total_count"`
	Next       *string `json:"next"        yaml:"next"`
	Previous   *string `json:"previous"    yaml:"previous"`
}

// ListResponse represents a paginated list response.
type ListResponse[T any] struct {
	APIID   string `json:"api_id"  yaml:"api_id"`
	Meta    Meta   `json:"meta"    yaml:"meta"`
	Objects []T    `json:"objects" yaml:"objects"`
}

// ModifyResponse represents the acknowledgement returned by update calls.
type ModifyResponse struct {
	APIID   string `json:"api_id"  yaml:"api_id"`
	Message string `json:"message" yaml:"message"`
}

// SubaccountCreateResponse represents the response to a subaccount create.
type SubaccountCreateResponse struct {
	APIID     string `json:"api_id"     yaml:"api_id"`
	Message   string `json:"message"    yaml:"message"`
	AuthID    string `json:"auth_id"    yaml:"auth_id"`
	AuthToken string `json:"auth_token" yaml:"auth_token"`
}

// ApplicationCreateResponse represents the response to an application create.
type ApplicationCreateResponse struct {
	APIID   string `json:"api_id"  yaml:"api_id"`
	Message string `json:"message" yaml:"message"`
	AppID   string `json:"app_id"  yaml:"app_id"`
}
