// Package main 启动应用程序
package main

import "github.com/yeisme/pressvault/pkg/cmd"

//	@title			PressVault API
//	@version		1.0
//	@description	PressVault 是一个文章发布平台后端，提供文章管理、分类/标签、附件上传下载与管理端认证等功能。

//	@license.name	MIT
//	@license.url	https://opensource.org/license/mit/

func main() {
	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}
