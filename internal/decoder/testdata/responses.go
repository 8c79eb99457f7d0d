package testdata

// DetailResponse is product-detail response with in stock, sold out, malformed and id-less products.
const DetailResponse = `{
  "state": 0,
  "data": {
    "products": [
      {
        "id": 146972802,
        "name": "Sweatshirt oversize",
        "priceU": 450000,
        "salePriceU": 189900,
        "feedbacks": 812,
        "sizes": [
          {"name": "S", "stocks": []},
          {"name": "M", "stocks": [{"wh": 507, "qty": 0}, {"wh": 117986, "qty": 14}]}
        ]
      },
      {
        "id": 38532148,
        "name": "Cotton t-shirt",
        "priceU": 120000,
        "salePriceU": 59900,
        "feedbacks": 3,
        "sizes": [
          {"name": "L", "stocks": [{"wh": 507, "qty": 0}]},
          {"name": "XL", "stocks": []}
        ]
      },
      {
        "id": 11111111,
        "name": 42,
        "sizes": []
      },
      {
        "id": 22222222,
        "name": "No price",
        "sizes": [{"name": "0", "stocks": [{"wh": 507, "qty": 1}]}]
      },
      {
        "name": "Without id"
      }
    ]
  }
}`

// CardResponse is product card from basket shard.
const CardResponse = `{
  "imt_id": 132781556,
  "nm_id": 146972802,
  "imt_name": "Sweatshirt oversize",
  "subj_name": "Sweatshirts ",
  "subj_root_name": "Clothes"
}`

// SearchResponse is search page with one promoted product and query replaced by marketplace.
const SearchResponse = `{
  "metadata": {"name": "sweatshirt", "catalog_type": "preset", "original": "swetshirt"},
  "state": 0,
  "version": 2,
  "data": {
    "products": [
      {"id": 1001},
      {"id": 146972802, "log": {"position": 150, "promoPosition": 2, "tp": "b"}},
      {"id": 1003}
    ]
  }
}`

// SellerGoodsResponse is seller-api goods page with one goods without sizes.
const SellerGoodsResponse = `{
  "data": {
    "listGoods": [
      {"nmID": 146972802, "vendorCode": "sw-1", "discount": 30, "sizes": [{"sizeID": 1, "price": 4500}]},
      {"nmID": 38532148, "vendorCode": "ts-1", "discount": 0, "sizes": []},
      {"nmID": 11111111, "vendorCode": "x-1", "discount": 5, "sizes": [{"sizeID": 2, "price": 1000}, {"sizeID": 3, "price": 1100}]}
    ]
  },
  "error": false
}`
