package model

import (
	"gorm.io/gorm"
)

type User struct {
	*Model
	Nickname string `json:"nickname"`
	Phone    string `json:"phone"`
	Avatar   string `json:"avatar"`
}

type UserFormatted struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}

func (u *User) Table() string {
	return "user"
}

func (u *User) Format() *UserFormatted {
	if u.Model == nil {
		return &UserFormatted{Nickname: u.Nickname, Avatar: u.Avatar}
	}
	return &UserFormatted{
		ID:       u.ID,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
	}
}

func (u *User) Get(db *gorm.DB) (*User, error) {
	var user User
	err := db.Table(u.Table()).Where("id = ? AND is_del = ?", u.ID, 0).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
