package service

import "time"

const (
	defaultPollInterval = time.Second
	defaultFundAmount   = 10000

	stepCheckExists      = "check_exists"
	stepResolvePrev      = "resolve_prev"
	stepMintOrigin       = "mint_origin"
	stepRegisterTemplate = "register_template"
	stepFund             = "fund"
	stepConfirmWait      = "confirm_wait"
)
