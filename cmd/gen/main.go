package main

import (
	"bazaar/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.ConfirmEmailTokenModel{},
		model.ContactModel{},
		model.ShopModel{},
		model.CategoryModel{},
		model.ShopCategoryModel{},
		model.ProductModel{},
		model.ProductInfoModel{},
		model.ParameterModel{},
		model.ProductParameterModel{},
		model.OrderModel{},
		model.OrderItemModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
