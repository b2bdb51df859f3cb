package job

// Expected catalog composition
const (
	LegalJobCount   = 8
	IllegalJobCount = 5
	TotalJobCount   = LegalJobCount + IllegalJobCount
)
