package entity

type UserFlag uint64

const (
	STAFF UserFlag = 1 << iota
	VERIFIED
	PARTNER
	EARLY_SUPPORTER
)

func (f UserFlag) Has(flag UserFlag) bool {
	return f&flag == flag
}

type User struct {
	SnowFlakeBase
	Username      string
	Discriminator string
	Email         string `gorm:"unique"`
	Bot           bool
	Flags         UserFlag
}
