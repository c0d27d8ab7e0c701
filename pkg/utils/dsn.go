package utils

import (
	"strings"

	"TagHub.com/config"
)

// GetMysqlDsn 生成数据库的dsn
func GetMysqlDsn() string {
	dsn := strings.Join([]string{config.ConfigInfo.Mysql.Username, ":",
		config.ConfigInfo.Mysql.Password, "@tcp(", config.ConfigInfo.Mysql.Addr, ")/",
		config.ConfigInfo.Mysql.Database, "?charset=" + config.ConfigInfo.Mysql.Charset + "&parseTime=true"}, "")
	return dsn
}

// GetRabbitMqUrl 生成消息队列连接串
func GetRabbitMqUrl() string {
	return strings.Join([]string{"amqp://", config.ConfigInfo.RabbitMq.Username, ":",
		config.ConfigInfo.RabbitMq.Password, "@", config.ConfigInfo.RabbitMq.Addr, "/"}, "")
}
