package dal

import "TagHub.com/cmd/user/dal/db"

func Init() {
	db.Init()
}
