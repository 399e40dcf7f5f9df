package models

type AmazonListing struct {
	ASIN     string `json:"asin,omitempty"`
	Category string `json:"category,omitempty"`
}

type MercadoLivreListing struct {
	ID       string `json:"id,omitempty"`
	Category string `json:"category,omitempty"`
}

type ShopifyListing struct {
	Handle string `json:"handle,omitempty"`
}

type MagentoListing struct {
	SKU string `json:"sku,omitempty"`
}

// Channel is the sales-channel configuration embedded in a product. A
// product's channel list is always replaced as a whole.
type Channel struct {
	Name         string              `json:"name" validate:"required,max=50"`
	Active       bool                `json:"active"`
	Price        string              `json:"price" validate:"required,numeric"`
	Stock        int                 `json:"stock" validate:"gte=0"`
	Title        string              `json:"title,omitempty" validate:"omitempty,max=200"`
	Description  string              `json:"description,omitempty"`
	Categories   []string            `json:"categories"`
	Keywords     []string            `json:"keywords"`
	Amazon       AmazonListing       `json:"amazon"`
	MercadoLivre MercadoLivreListing `json:"mercadolivre"`
	Shopify      ShopifyListing      `json:"shopify"`
	Magento      MagentoListing      `json:"magento"`
}

type ReplaceChannelsRequest struct {
	Channels []Channel `json:"channels" validate:"max=20,dive"`
}
